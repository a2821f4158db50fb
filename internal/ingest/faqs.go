package ingest

// FAQ is a raw knowledge base entry before embedding.
type FAQ struct {
	Category string
	Content  string
}

// DefaultFAQs is the bundled Cimba.AI product knowledge base.
var DefaultFAQs = []FAQ{
	{
		Category: "General",
		Content:  "Cimba.AI is a generative-AI platform that allows enterprises to build custom AI agents that automate workflows, provide actionable insights, and integrate with business data without coding.",
	},
	{
		Category: "Usage",
		Content:  "Cimba offers a no-code interface enabling business analysts and non-technical users to build AI agents using natural language instead of writing code.",
	},
	{
		Category: "Capabilities",
		Content:  "Cimba agents can automate data-heavy tasks, detect anomalies, generate reports, trigger workflow alerts, and provide AI-driven decision recommendations.",
	},
	{
		Category: "Use Cases",
		Content:  "Cimba is beneficial for Finance, Operations, Customer Success, and Growth teams by helping optimize data-driven operations and reduce manual effort.",
	},
	{
		Category: "Deployment",
		Content:  "Cimba allows companies to deploy their first AI agent in under a week, enabling fast value delivery without deep AI engineering.",
	},
	{
		Category: "Security",
		Content:  "Cimba is designed for enterprises with governance, access controls, compliance support, and secure handling of business data.",
	},
	{
		Category: "Action Automation",
		Content:  "Cimba agents go beyond analytics to execute actions such as sending alerts, updating CRMs, and launching workflows based on insights.",
	},
	{
		Category: "Differentiation",
		Content:  "Unlike traditional BI dashboards, Cimba combines analytics, automation, and adaptive AI to convert insights into direct business actions.",
	},
	{
		Category: "Data Handling",
		Content:  "Cimba integrates structured and unstructured data including dashboards, metadata, query history, and operational playbooks for deeper context.",
	},
	{
		Category: "Learning",
		Content:  "Cimba AI agents learn from interactions and adapt continuously, improving accuracy and performance over time.",
	},
	{
		Category: "Integrations",
		Content:  "Cimba integrates with existing business tools like CRMs, data warehouses, and workflow systems to enhance enterprise analytics and automation.",
	},
	{
		Category: "Fit",
		Content:  "Cimba is built for mid-to-large enterprises needing scalable AI automation that supports enterprise-level governance and security.",
	},
	{
		Category: "Build vs Buy",
		Content:  "Cimba eliminates the cost and complexity of building custom AI systems in-house, offering faster ROI and reduced development overhead.",
	},
	{
		Category: "Personas",
		Content:  "Cimba is designed for business analysts, finance teams, operations managers, customer success leaders, and productivity engineers.",
	},
	{
		Category: "Business Impact",
		Content:  "Cimba helps companies streamline decision-making, reduce manual workloads, and accelerate analytics productivity using AI agents.",
	},
}
