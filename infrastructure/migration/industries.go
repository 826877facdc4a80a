package migration

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/etl-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/etl-dashboard-api/internal/domain"
)

// apolloIndustries é a distribuição de envios por indústria na base do Apollo (percentual do total)
var apolloIndustries = []domain.Industry{
	{Name: "Hospital & Health Care", SendPercentage: 24.9567, Keywords: "hospital, health system, medical center, urgent care, emergency room"},
	{Name: "Renewables & Environment", SendPercentage: 5.8740, Keywords: "solar company, wind farm, renewable energy, clean energy"},
	{Name: "Financial Services", SendPercentage: 5.4735, Keywords: "wealth management, financial advisor, financial planner, fiduciary"},
	{Name: "Capital Markets", SendPercentage: 4.9024, Keywords: "stock exchange, brokerage, trading firm, securities"},
	{Name: "Banking", SendPercentage: 4.0851, Keywords: "bank, credit union, savings and loan, commercial bank"},
	{Name: "Higher Education", SendPercentage: 3.6748, Keywords: "university, college, community college, graduate school"},
	{Name: "Information Technology & Services", SendPercentage: 3.5525, Keywords: "it company, managed it, msp, it consulting"},
	{Name: "Agriculture", SendPercentage: 2.4556, Keywords: "farm, agricultural, crop production, agribusiness"},
	{Name: "Transportation/Trucking/Railroad", SendPercentage: 2.4531, Keywords: "trucking company, freight carrier, railroad, ltl carrier"},
	{Name: "Philanthropy", SendPercentage: 2.4366, Keywords: "foundation, grant maker, philanthropic, endowment"},
	{Name: "Mental Health Care", SendPercentage: 2.2103, Keywords: "psychiatric, psychologist, therapist office, counseling center, behavioral health"},
	{Name: "Gambling & Casinos", SendPercentage: 2.0960, Keywords: "casino, gaming, gambling, slot machine"},
	{Name: "Consumer Electronics", SendPercentage: 2.0508, Keywords: "electronics store, appliance store, consumer electronics"},
	{Name: "Retail", SendPercentage: 2.0231, Keywords: "retail store, retail chain, department store, big box"},
	{Name: "Research", SendPercentage: 1.8912, Keywords: "research lab, research institute, r&d center, laboratory"},
	{Name: "Law Practice", SendPercentage: 1.8596, Keywords: "law firm, attorney, lawyer, legal counsel, litigation"},
	{Name: "Medical Practice", SendPercentage: 1.7845, Keywords: "physician office, doctor office, medical clinic, primary care, pediatrician"},
	{Name: "Hospitality", SendPercentage: 1.7798, Keywords: "hotel, motel, resort, inn, lodging"},
	{Name: "Public Safety", SendPercentage: 1.7335, Keywords: "fire department, ems, emergency services, 911"},
	{Name: "Medical Devices", SendPercentage: 1.6479, Keywords: "medical device, surgical equipment, diagnostic equipment, implant manufacturer"},
	{Name: "Machinery", SendPercentage: 1.6308, Keywords: "machine manufacturer, industrial machinery, heavy equipment maker"},
	{Name: "Outsourcing/Offshoring", SendPercentage: 1.5303, Keywords: "bpo, call center, outsourcing company, offshore"},
	{Name: "Construction", SendPercentage: 1.4076, Keywords: "general contractor, construction company, builder, home builder"},
	{Name: "Religious Institutions", SendPercentage: 1.3082, Keywords: "church, synagogue, mosque, temple, ministry"},
	{Name: "Commercial Real Estate", SendPercentage: 1.1900, Keywords: "commercial property, office leasing, retail leasing, cbre, jll"},
	{Name: "Venture Capital & Private Equity", SendPercentage: 1.1897, Keywords: "venture capital, private equity firm, vc fund, pe firm"},
	{Name: "Pharmaceuticals", SendPercentage: 1.1568, Keywords: "pharmaceutical company, drug manufacturer, pharma, biopharmaceutical"},
	{Name: "Oil & Energy", SendPercentage: 1.1506, Keywords: "oil company, gas company, petroleum, refinery, drilling"},
	{Name: "Primary/Secondary Education", SendPercentage: 1.1412, Keywords: "school district, elementary school, middle school, high school, k-12"},
	{Name: "Airlines/Aviation", SendPercentage: 1.1132, Keywords: "airline, air carrier, aviation company, airport"},
	{Name: "Leisure, Travel & Tourism", SendPercentage: 0.9166, Keywords: "travel agency, tour operator, cruise line, vacation"},
	{Name: "Restaurants", SendPercentage: 0.9093, Keywords: "restaurant chain, fast food, casual dining, fine dining restaurant"},
	{Name: "Media Production", SendPercentage: 0.8592, Keywords: "video production, film production company, production house"},
	{Name: "Package/Freight Delivery", SendPercentage: 0.8340, Keywords: "courier, parcel delivery, ups, fedex, dhl"},
	{Name: "Professional Training & Coaching", SendPercentage: 0.8108, Keywords: "corporate trainer, executive coach, leadership training"},
	{Name: "Insurance", SendPercentage: 0.8056, Keywords: "insurance company, insurance carrier, underwriter, insurance agency"},
	{Name: "Military", SendPercentage: 0.7018, Keywords: "military base, armed forces, defense department, army, navy"},
	{Name: "Alternative Medicine", SendPercentage: 0.6918, Keywords: "chiropractor, acupuncture clinic, naturopath, holistic health"},
	{Name: "Real Estate", SendPercentage: 0.6794, Keywords: "real estate brokerage, realtor, realty company, real estate agent"},
	{Name: "Newspapers", SendPercentage: 0.6787, Keywords: "newspaper, daily news, press, gazette"},
	{Name: "Accounting", SendPercentage: 0.6778, Keywords: "cpa firm, accounting firm, tax preparation, bookkeeper, auditor"},
	{Name: "Automotive", SendPercentage: 0.6315, Keywords: "car manufacturer, auto parts, car dealership, automotive supplier"},
	{Name: "Biotechnology", SendPercentage: 0.6095, Keywords: "biotech company, gene therapy, molecular biology, bioscience"},
	{Name: "Government Administration", SendPercentage: 0.5694, Keywords: "city government, county government, state agency, federal agency"},
	{Name: "Supermarkets", SendPercentage: 0.5690, Keywords: "supermarket, grocery store, grocery chain, food market"},
	{Name: "Investment Banking", SendPercentage: 0.5230, Keywords: "investment bank, m&a advisor, goldman sachs, morgan stanley"},
	{Name: "Museums & Institutions", SendPercentage: 0.4612, Keywords: "museum, art museum, history museum, science museum"},
	{Name: "Warehousing", SendPercentage: 0.4412, Keywords: "warehouse company, distribution center, cold storage, 3pl warehouse"},
	{Name: "Health, Wellness & Fitness", SendPercentage: 0.4262, Keywords: "gym, fitness center, health club, yoga studio, personal trainer"},
	{Name: "Computer & Network Security", SendPercentage: 0.4253, Keywords: "cybersecurity company, infosec, penetration testing, soc"},
	{Name: "E-Learning", SendPercentage: 0.4240, Keywords: "online course, elearning platform, lms provider, educational technology"},
	{Name: "Staffing & Recruiting", SendPercentage: 0.4193, Keywords: "staffing agency, recruiting firm, headhunter, temp agency, employment agency"},
	{Name: "Logistics & Supply Chain", SendPercentage: 0.4156, Keywords: "3pl, freight broker, supply chain company, fulfillment center"},
	{Name: "Public Policy", SendPercentage: 0.4134, Keywords: "policy institute, think tank, policy research"},
	{Name: "Sporting Goods", SendPercentage: 0.3995, Keywords: "sporting goods store, sports equipment, athletic gear"},
	{Name: "Environmental Services", SendPercentage: 0.3992, Keywords: "waste hauler, garbage collection, recycling company, waste disposal"},
	{Name: "Wine & Spirits", SendPercentage: 0.3917, Keywords: "winery, vineyard, distillery, brewery, craft beer"},
	{Name: "Furniture", SendPercentage: 0.3715, Keywords: "furniture store, furniture manufacturer, office furniture"},
	{Name: "Civic & Social Organization", SendPercentage: 0.3593, Keywords: "rotary, lions club, chamber of commerce, trade association"},
	{Name: "Facilities Services", SendPercentage: 0.3522, Keywords: "janitorial company, cleaning company, custodial services, commercial cleaning"},
	{Name: "Motion Pictures & Film", SendPercentage: 0.3403, Keywords: "film studio, movie studio, film production, hollywood"},
	{Name: "Civil Engineering", SendPercentage: 0.3315, Keywords: "civil engineering firm, structural engineer, geotechnical"},
	{Name: "Utilities", SendPercentage: 0.3211, Keywords: "electric utility, gas utility, water utility, power company"},
	{Name: "Internet", SendPercentage: 0.3164, Keywords: "web company, dot com, internet company, online platform"},
	{Name: "Marketing & Advertising", SendPercentage: 0.3113, Keywords: "ad agency, advertising agency, media buyer, creative agency"},
	{Name: "Chemicals", SendPercentage: 0.3072, Keywords: "chemical manufacturer, chemical plant, specialty chemicals"},
	{Name: "Luxury Goods & Jewelry", SendPercentage: 0.2952, Keywords: "jewelry store, luxury brand, watch manufacturer, jeweler"},
	{Name: "Investment Management", SendPercentage: 0.2863, Keywords: "asset manager, hedge fund, mutual fund, portfolio manager"},
	{Name: "Design", SendPercentage: 0.2613, Keywords: "design studio, industrial design, product design firm"},
	{Name: "Apparel & Fashion", SendPercentage: 0.2568, Keywords: "clothing brand, fashion brand, apparel manufacturer"},
	{Name: "Judiciary", SendPercentage: 0.2558, Keywords: "courthouse, court system, judicial"},
	{Name: "Legal Services", SendPercentage: 0.2488, Keywords: "paralegal, notary, legal aid, court reporter"},
	{Name: "Executive Office", SendPercentage: 0.2473, Keywords: "c-suite, executive suite, corporate office"},
	{Name: "Defense & Space", SendPercentage: 0.2433, Keywords: "defense contractor, military contractor, space company, spacex, nasa"},
	{Name: "Semiconductors", SendPercentage: 0.2415, Keywords: "chip manufacturer, semiconductor fab, intel, amd, nvidia"},
	{Name: "Telecommunications", SendPercentage: 0.2352, Keywords: "telecom company, phone company, telco, att, verizon"},
	{Name: "Events Services", SendPercentage: 0.2313, Keywords: "event planner, event venue, convention center, catering company"},
	{Name: "Individual & Family Services", SendPercentage: 0.2313, Keywords: "social worker, family counseling, child welfare, adoption agency"},
	{Name: "Building Materials", SendPercentage: 0.2306, Keywords: "lumber yard, building supply, concrete supplier, roofing materials"},
	{Name: "Aviation & Aerospace", SendPercentage: 0.2261, Keywords: "aerospace manufacturer, aircraft manufacturer, boeing, lockheed"},
	{Name: "Plastics", SendPercentage: 0.2211, Keywords: "plastic manufacturer, injection molding, plastic fabrication"},
	{Name: "Entertainment", SendPercentage: 0.2193, Keywords: "theme park, amusement park, entertainment venue, concert venue"},
	{Name: "Education Management", SendPercentage: 0.2115, Keywords: "charter school, private school, boarding school, montessori"},
	{Name: "Sports", SendPercentage: 0.1916, Keywords: "sports team, sports franchise, athletic club, sports league"},
	{Name: "Fine Art", SendPercentage: 0.1900, Keywords: "art gallery, art dealer, fine art"},
	{Name: "Human Resources", SendPercentage: 0.1881, Keywords: "hr outsourcing, payroll provider, benefits administrator"},
	{Name: "Recreational Facilities & Services", SendPercentage: 0.1854, Keywords: "recreation center, community center, ymca, country club"},
	{Name: "Industrial Automation", SendPercentage: 0.1825, Keywords: "automation company, robotics company, plc, industrial robot"},
	{Name: "Legislative Office", SendPercentage: 0.1591, Keywords: "congress, senate, legislature, capitol"},
	{Name: "Electrical/Electronic Manufacturing", SendPercentage: 0.1434, Keywords: "electronics manufacturer, pcb manufacturer, ems"},
	{Name: "Fishery", SendPercentage: 0.1427, Keywords: "fishing company, seafood processor, fishery, aquaculture"},
	{Name: "Cosmetics", SendPercentage: 0.1387, Keywords: "cosmetics company, beauty brand, skincare brand, makeup brand"},
	{Name: "Computer Software", SendPercentage: 0.1386, Keywords: "software company, saas company, software developer, app developer"},
	{Name: "Architecture & Planning", SendPercentage: 0.1328, Keywords: "architecture firm, architect, urban planner, landscape architect"},
	{Name: "Food & Beverages", SendPercentage: 0.1283, Keywords: "beverage company, food distributor, beverage distributor"},
	{Name: "Security & Investigations", SendPercentage: 0.1266, Keywords: "security guard, security company, private investigator, alarm company"},
	{Name: "Government Relations", SendPercentage: 0.1240, Keywords: "lobbyist, lobbying firm, government affairs"},
	{Name: "Music", SendPercentage: 0.1214, Keywords: "record label, music publisher, recording studio, music production"},
	{Name: "Libraries", SendPercentage: 0.1044, Keywords: "public library, library system, academic library"},
	{Name: "Nonprofit Organization Management", SendPercentage: 0.0958, Keywords: "501c3, charitable organization, ngo"},
	{Name: "International Affairs", SendPercentage: 0.0925, Keywords: "embassy, consulate, diplomatic, foreign ministry"},
	{Name: "Veterinary", SendPercentage: 0.0912, Keywords: "veterinary clinic, animal hospital, vet clinic, pet hospital"},
	{Name: "Law Enforcement", SendPercentage: 0.0824, Keywords: "police department, sheriff, law enforcement agency"},
	{Name: "Graphic Design", SendPercentage: 0.0696, Keywords: "graphic design studio, design agency, creative studio"},
	{Name: "Consumer Goods", SendPercentage: 0.0684, Keywords: "cpg company, fmcg, consumer products company"},
	{Name: "Program Development", SendPercentage: 0.0659, Keywords: "program manager, pmo, project management office"},
	{Name: "Management Consulting", SendPercentage: 0.0591, Keywords: "mckinsey, bain, bcg, deloitte consulting, strategy consultant"},
	{Name: "Dairy", SendPercentage: 0.0587, Keywords: "dairy farm, milk processor, cheese manufacturer, creamery"},
	{Name: "Textiles", SendPercentage: 0.0577, Keywords: "textile mill, fabric manufacturer, weaving, dyeing"},
	{Name: "Shipbuilding", SendPercentage: 0.0567, Keywords: "shipyard, ship builder, naval shipyard, boat manufacturer"},
	{Name: "Farming", SendPercentage: 0.0560, Keywords: "dairy farm, cattle farm, poultry farm, hog farm"},
	{Name: "Fund-Raising", SendPercentage: 0.0532, Keywords: "fundraising consultant, donor management, annual fund, capital campaign"},
	{Name: "Online Media", SendPercentage: 0.0529, Keywords: "digital publisher, online news, web magazine, blog network"},
	{Name: "Nanotechnology", SendPercentage: 0.0513, Keywords: "nanotech, nanomaterials, nanoscience"},
	{Name: "Railroad Manufacture", SendPercentage: 0.0511, Keywords: "locomotive, railcar manufacturer, train manufacturer"},
	{Name: "Translation & Localization", SendPercentage: 0.0498, Keywords: "translation agency, interpreter, localization company"},
	{Name: "Broadcast Media", SendPercentage: 0.0474, Keywords: "tv station, radio station, broadcaster, television network"},
	{Name: "Performing Arts", SendPercentage: 0.0474, Keywords: "theater company, ballet, opera house, symphony orchestra"},
	{Name: "Animation", SendPercentage: 0.0441, Keywords: "animation studio, animator, motion graphics studio"},
	{Name: "Mechanical or Industrial Engineering", SendPercentage: 0.0375, Keywords: "engineering firm, mechanical engineer, industrial engineer"},
	{Name: "Food Production", SendPercentage: 0.0327, Keywords: "food manufacturer, food processing plant, packaged food company"},
	{Name: "Writing & Editing", SendPercentage: 0.0325, Keywords: "copywriter, editor, content writer, technical writer"},
	{Name: "Printing", SendPercentage: 0.0315, Keywords: "print shop, commercial printer, printing company"},
	{Name: "International Trade & Development", SendPercentage: 0.0314, Keywords: "usaid, world bank, imf, development agency"},
	{Name: "Photography", SendPercentage: 0.0309, Keywords: "photography studio, photographer, photo studio"},
	{Name: "Computer Games", SendPercentage: 0.0295, Keywords: "game studio, video game developer, game publisher"},
	{Name: "Market Research", SendPercentage: 0.0279, Keywords: "market research firm, survey company, focus group, nielsen"},
	{Name: "Information Services", SendPercentage: 0.0273, Keywords: "data provider, information broker, data aggregator"},
	{Name: "Paper & Forest Products", SendPercentage: 0.0251, Keywords: "paper mill, pulp mill, lumber mill, sawmill"},
	{Name: "Import & Export", SendPercentage: 0.0243, Keywords: "import company, export company, customs broker, freight forwarder"},
	{Name: "Political Organization", SendPercentage: 0.0240, Keywords: "political party, pac, campaign committee"},
	{Name: "Public Relations & Communications", SendPercentage: 0.0162, Keywords: "pr firm, public relations firm, communications agency"},
	{Name: "Maritime", SendPercentage: 0.0124, Keywords: "shipping line, cargo ship, port operator, maritime company"},
	{Name: "Wireless", SendPercentage: 0.0118, Keywords: "wireless carrier, cell phone company, mobile carrier"},
	{Name: "Mining & Metals", SendPercentage: 0.0112, Keywords: "mining company, mine operator, metal producer, ore extraction"},
	{Name: "Packaging & Containers", SendPercentage: 0.0103, Keywords: "packaging company, box manufacturer, container manufacturer"},
	{Name: "Publishing", SendPercentage: 0.0088, Keywords: "book publisher, magazine publisher, publishing house"},
	{Name: "Alternative Dispute Resolution", SendPercentage: 0.0080, Keywords: "mediator, arbitrator, arbitration firm"},
	{Name: "Glass, Ceramics & Concrete", SendPercentage: 0.0077, Keywords: "glass manufacturer, concrete plant, ceramics manufacturer"},
	{Name: "Arts & Crafts", SendPercentage: 0.0067, Keywords: "craft store, art supply, hobby shop"},
	{Name: "Think Tanks", SendPercentage: 0.0064, Keywords: "brookings, heritage foundation, rand corporation, policy center"},
	{Name: "Tobacco", SendPercentage: 0.0049, Keywords: "tobacco company, cigarette manufacturer"},
	{Name: "Computer Networking", SendPercentage: 0.0043, Keywords: "network integrator, cisco partner, network installer"},
	{Name: "Computer Hardware", SendPercentage: 0.0032, Keywords: "computer manufacturer, pc maker, hardware vendor"},
	{Name: "Ranching", SendPercentage: 0.0013, Keywords: "cattle ranch, horse ranch, livestock ranch"},
}

// SeedIndustries insere ou atualiza as indústrias pelo nome.
// Uma linha com falha é registrada e ignorada.
func SeedIndustries(ctx context.Context, repo repository.IndustryRepository) domain.SeedResult {
	logrus.WithField("industries", len(apolloIndustries)).Info("Populando tabela de indústrias")

	result := domain.SeedResult{}
	for _, industry := range apolloIndustries {
		industry.Source = string(domain.LeadSourceApollo)

		inserted, err := repo.UpsertByName(ctx, &industry)
		if err != nil {
			logrus.WithField("industry", industry.Name).WithError(err).Error("Erro ao inserir indústria")
			continue
		}

		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	logrus.WithFields(logrus.Fields{
		"inserted": result.Inserted,
		"updated":  result.Updated,
	}).Info("Indústrias populadas")

	return result
}
