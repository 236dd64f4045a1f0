package fallback

import "github.com/binarysemantics/ichatrobo/internal/model/convo"

// Canned responses live here as plain value tables so the selector stays
// trivial control flow and the literals are unit-testable in isolation.

var genericResponse = convo.StructuredResponse{
	Intro: "Binary Semantics offers a comprehensive global portfolio of products, platforms, frameworks and solutions spanning industries including technology, insurance, automotive, and retail. These offerings combine software innovation, cloud strategy, and data intelligence to enable enterprises to achieve scalability and digital transformation globally.",
	Sections: []convo.Section{
		{Content: "The <span class='font-bold text-gray-900'>Products and Platforms</span> portfolio delivers a robust mix of proprietary software and an expansive partnership ecosystem. It supports enterprise-grade <span class='font-bold text-gray-900'>AI automation, digital commerce</span> and <span class='font-bold text-gray-900'>data management</span> products backed by ROI-focused offerings."},
		{Content: "Across <span class='font-bold text-gray-900'>financial services</span>, our Intelligent Insurance Automation suite combines <span class='font-bold text-gray-900'>microservices architecture</span> and <span class='font-bold text-gray-900'>AI-driven analytics</span> for seamless policy lifecycle management and claims processing."},
		{Content: "In <span class='font-bold text-gray-900'>Fleet & Logistics</span>, our Smart Fleet Management ecosystem brings together <span class='font-bold text-gray-900'>IoT hardware, real-time telematics</span> and <span class='font-bold text-gray-900'>predictive maintenance</span> frameworks for accelerated operational efficiency."},
	},
	Related: []convo.RelatedItem{
		{
			Title: "Intelligent Insurance Automation Suite",
			Kind:  convo.KindLearnMore,
			Image: "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/industries/insurance",
		},
		{
			Title: "Binary Semantics and Google Cloud Partnership",
			Kind:  convo.KindCaseStudy,
			Image: "https://images.unsplash.com/photo-1573164713988-8665fc963095?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/case-studies",
		},
		{
			Title: "Smart Fleet Management Solutions Brochure",
			Kind:  convo.KindDownloadBrochure,
			Image: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/products/fleetrobo",
		},
	},
	Suggestions: []string{
		"What are Binary Semantics' flagship software and platforms?",
		"Which industries do the digital and cloud services target?",
		"How does the Fleet Management solution optimize costs?",
	},
}

var fleetResponse = convo.StructuredResponse{
	Intro: "Our Smart Fleet Management ecosystem is designed to revolutionize logistics. By leveraging IoT-enabled telematics and real-time data analytics, we provide complete visibility into fleet performance, ensuring safety, compliance, and cost efficiency.",
	Sections: []convo.Section{
		{Content: "Real-time <span class='font-bold text-gray-900'>Vehicle Tracking</span> and route optimization to minimize fuel consumption and delivery delays."},
		{Content: "<span class='font-bold text-gray-900'>Predictive Maintenance</span> alerts that prevent costly breakdowns by analyzing engine health data."},
		{Content: "Comprehensive <span class='font-bold text-gray-900'>Driver Behavior Analysis</span> to improve safety standards and reduce insurance premiums."},
	},
	Related: []convo.RelatedItem{
		{
			Title: "Fleet Telematics Dashboard Demo",
			Kind:  convo.KindLearnMore,
			Image: "https://images.unsplash.com/photo-1592861956120-e524fc739696?q=80&w=400",
			URL:   "https://www.binarysemantics.com/products/fleetrobo",
		},
		{
			Title: "Binary Semantics and Google Cloud Partnership",
			Kind:  convo.KindCaseStudy,
			Image: "https://images.unsplash.com/photo-1573164713988-8665fc963095?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/case-studies",
		},
		{
			Title: "Smart Fleet Management Solutions Brochure",
			Kind:  convo.KindDownloadBrochure,
			Image: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/products/fleetrobo",
		},
	},
	Suggestions: []string{
		"How does the driver behavior scoring work?",
		"Can this integrate with existing ERP systems?",
		"What hardware is required for tracking?",
	},
}

var insuranceResponse = convo.StructuredResponse{
	Intro: "Binary Semantics empowers the insurance sector with Intelligent Insurance Automation. We streamline the entire policy lifecycle—from risk assessment to claims processing—using Generative AI and Machine Learning to reduce operational costs by up to 30%.",
	Sections: []convo.Section{
		{Content: "<span class='font-bold text-gray-900'>Automated Underwriting</span> engine that assesses risk in real-time using alternative data sources."},
		{Content: "AI-driven <span class='font-bold text-gray-900'>Claims Processing</span> that reduces turnaround time from days to minutes."},
		{Content: "Hyper-personalized <span class='font-bold text-gray-900'>Customer Engagement</span> tools powered by conversational AI."},
	},
	Related: []convo.RelatedItem{
		{
			Title: "AI in Insurance: A Whitepaper",
			Kind:  convo.KindDownloadBrochure,
			Image: "https://images.unsplash.com/photo-1507679799987-c73779587ccf?q=80&w=400",
			URL:   "https://www.binarysemantics.com/industries/insurance",
		},
		{
			Title: "Binary Semantics and Google Cloud Partnership",
			Kind:  convo.KindCaseStudy,
			Image: "https://images.unsplash.com/photo-1573164713988-8665fc963095?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/case-studies",
		},
		{
			Title: "Smart Fleet Management Solutions Brochure",
			Kind:  convo.KindDownloadBrochure,
			Image: "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=400&auto=format&fit=crop",
			URL:   "https://www.binarysemantics.com/products/fleetrobo",
		},
	},
	Suggestions: []string{
		"How does the fraud detection system work?",
		"Is the platform compliant with GDPR?",
		"Can I see a demo of the claims module?",
	},
}
