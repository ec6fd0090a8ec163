package database

import (
	"time"

	"github.com/rpupo63/corporate-site-backend/models"
)

type fixture struct {
	id, title, excerpt, author string
	publishedAt, updatedAt     string
	tags                       []string
	featured                   bool
	image, imageAlt            string
	content                    string
}

// DemoPosts returns the sample posts the demo store starts with, newest first
func DemoPosts() []models.BlogPost {
	posts := make([]models.BlogPost, 0, len(demoFixtures))
	for _, f := range demoFixtures {
		posts = append(posts, models.BlogPost{
			ID:            f.id,
			Title:         f.title,
			Content:       f.content,
			Excerpt:       f.excerpt,
			Author:        f.author,
			PublishedAt:   mustParseTime(f.publishedAt),
			UpdatedAt:     mustParseTime(f.updatedAt),
			Tags:          append([]string(nil), f.tags...),
			Featured:      f.featured,
			ReadingTime:   models.CalculateReadingTime(f.content),
			FeaturedImage: f.image,
			ImageAlt:      f.imageAlt,
			Status:        models.StatusPublished,
			Slug:          models.GenerateSlug(f.title),
		})
	}
	return posts
}

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

var demoFixtures = []fixture{
	{
		id:          "5",
		title:       "Investment Analyst Internship (Harare) - Join GRI",
		excerpt:     "Join GRI as an Investment Analyst Intern in Harare. 3-6 month internship with strong possibility of full-time conversion. Apply your analytical skills to real-world financial challenges.",
		author:      "GRI Careers Team",
		publishedAt: "2024-01-25T10:00:00Z",
		updatedAt:   "2024-01-25T10:00:00Z",
		tags:        []string{"careers", "internship", "investment", "finance", "harare"},
		featured:    true,
		image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&q=80",
		imageAlt:    "Professional working on financial analysis and investment models",
		content: `# Investment Analyst Internship (Harare)

**Location:** Harare, Zimbabwe
**Duration:** 3-6 Months (strong possibility of full-time conversion)
**Start Date:** Rolling intake

Are you an attachment-year student or recent graduate driven by numbers, strategy and forecasting economic outcomes? Move beyond theory and apply your analytical skills to live transactions.

## Core Responsibilities

### Deal Valuation
Build and stress-test financial models (DCF, IRR, ROI) for live transactions.

### M&A Analysis
Develop merger models and accretion and dilution forecasts.

### Profitability Optimisation
Analyse segment-level P&Ls to identify margin drivers.

### Strategic Storytelling
Turn complex data into executive-ready insights.

## Required Qualifications

- **Academic background:** Data Science, Finance, Actuarial Science, Applied Mathematics or a related field
- **Technical expertise:** advanced Excel, DCF and IRR modelling, basic statistics; Python, R or Power BI are a plus
- **Competencies:** analytical rigour, precision, clear executive communication

## How to Apply

Send your CV and a short note on a deal or market you have analysed. Applications are reviewed continuously until the position is filled.`,
	},
	{
		id:          "1",
		title:       "Top Investment Opportunities in African Infrastructure Development",
		excerpt:     "Exploring the most promising infrastructure investment opportunities across Africa's rapidly developing markets.",
		author:      "Michael Okoye",
		publishedAt: "2024-01-20T09:00:00Z",
		updatedAt:   "2024-01-20T09:00:00Z",
		tags:        []string{"business", "investment", "infrastructure", "africa"},
		featured:    true,
		image:       "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=800&q=80",
		imageAlt:    "Modern African city skyline with construction cranes",
		content: `# Top Investment Opportunities in African Infrastructure Development

Africa's infrastructure gap is one of the largest investment opportunities of the coming decade. Growing populations and expanding economies need roads, power and connectivity at a scale public budgets cannot fund alone.

## Key Investment Sectors

### Transportation
- **Highways** connecting major commercial centres
- **Railways** linking mines, farms and ports
- **Ports and airports** that cut logistics costs

### Energy
- **Utility-scale solar and wind**
- **Grid modernisation** and smart metering
- **Off-grid solutions** for rural communities

### Digital
- **Data centres** for cloud adoption
- **Fibre backbones** and last-mile connectivity
- **Payment infrastructure** for a fast-growing fintech sector

## Market Opportunity

The African Development Bank estimates an annual infrastructure financing need of $130-170 billion. Public-private partnerships, green bonds and blended finance structures are the main routes for private capital.

## Returns

Well-structured projects offer long-term stable returns, inflation protection through indexed tariffs and diversification across currencies. Success depends on experienced local operators and a clear reading of each market's regulatory framework.`,
	},
	{
		id:          "2",
		title:       "Career Opportunities in Africa's Renewable Energy Boom",
		excerpt:     "The renewable energy sector in Africa is creating thousands of new career opportunities. Here's what you need to know.",
		author:      "Aisha Patel",
		publishedAt: "2024-01-18T11:30:00Z",
		updatedAt:   "2024-01-18T11:30:00Z",
		tags:        []string{"careers", "renewable-energy", "africa", "employment"},
		featured:    true,
		image:       "https://images.unsplash.com/photo-1466611653911-95081537e5b7?w=800&q=80",
		imageAlt:    "Solar panels with African landscape in background",
		content: `# Career Opportunities in Africa's Renewable Energy Boom

From solar installations in Morocco to wind farms in Kenya, the green energy sector is expanding quickly and hiring across every skill level.

## High-Demand Career Paths

### Technical Roles
- **Solar PV engineers** who design and commission systems
- **Wind turbine technicians** who keep installations running
- **Energy storage specialists** for batteries and grid storage

### Business Roles
- **Project developers** who take sites from feasibility to financial close
- **Energy analysts** who model yields and tariffs
- **Sustainability consultants** who guide corporate buyers

## Skills That Stand Out

Electrical engineering fundamentals, project management, financial modelling and familiarity with local permitting all shorten the path into the industry. Vocational certifications are increasingly recognised alongside degrees.

## Outlook

With falling technology costs and rising demand for reliable power, employment in the sector is expected to grow strongly through the next decade.`,
	},
	{
		id:          "3",
		title:       "Breaking: Major Mining Discoveries Reshape African Investment Landscape",
		excerpt:     "Latest mining discoveries across Africa are attracting massive investment and creating new economic opportunities across the continent.",
		author:      "David Mwangi",
		publishedAt: "2024-01-16T08:15:00Z",
		updatedAt:   "2024-01-16T14:22:00Z",
		tags:        []string{"news", "mining", "investment", "economy"},
		featured:    false,
		image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&q=80",
		imageAlt:    "Mining operation in African landscape",
		content: `# Breaking: Major Mining Discoveries Reshape African Investment Landscape

Recent mineral discoveries are drawing billions in foreign investment and reshaping the continent's economic prospects.

## Recent Discoveries

### Zimbabwe's Lithium Boom
Zimbabwe has emerged as a major lithium producer, with several world-class deposits moving into production to serve the electric vehicle battery market.

### Madagascar's Rare Earths
High-grade rare earth deposits are attracting attention from manufacturers looking to diversify supply chains.

### Ghana's Bauxite Expansion
Ghana is pairing bauxite expansion with local processing to capture more value at home.

## Investment Implications

- New railway lines and ports to move output
- Power generation built alongside mining operations
- Downstream processing industries and skilled employment

## Looking Ahead

Analysts expect these discoveries to position Africa as a critical supplier for the energy transition. The challenge is making sure local communities benefit while environmental standards are upheld.`,
	},
	{
		id:          "4",
		title:       "How AI and Blockchain are Transforming African Agriculture",
		excerpt:     "Exploring how artificial intelligence and blockchain technologies are revolutionizing agriculture across Africa, improving yields and food security.",
		author:      "Dr. Amara Okafor",
		publishedAt: "2024-01-14T14:45:00Z",
		updatedAt:   "2024-01-14T14:45:00Z",
		tags:        []string{"technology", "agriculture", "ai", "blockchain", "africa"},
		featured:    false,
		image:       "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=800&q=80",
		imageAlt:    "African farmer using tablet technology in agricultural field",
		content: `# How AI and Blockchain are Transforming African Agriculture

Artificial intelligence and blockchain are helping farmers raise yields, reach buyers and prove the origin of what they grow.

## AI in the Field

- **Satellite imagery analysis** to monitor crop health and predict yields
- **Weather models** that time planting and harvesting
- **Pest and disease detection** from smartphone photos

## Blockchain in the Supply Chain

- **Traceability** from farm gate to export terminal
- **Smart contracts** that release payment on delivery
- **Digital identities** that give smallholders access to credit

## What It Takes

Connectivity, affordable devices and training remain the main constraints. Partnerships between governments, agritech start-ups and cooperatives are closing these gaps.

As the tools become cheaper and easier to use they will keep transforming African agriculture, creating opportunities for farmers while strengthening food security.`,
	},
}
