package model

// DefaultContent returns the factory content document. These values are
// also the migration baseline: solution copy fields and the partners
// section are compared against this document on every load, so shipping
// new copy here upgrades already-saved documents.
func DefaultContent() *ContentDocument {
	return &ContentDocument{
		Hero: HeroContent{
			Tag:             "POWERED BY HOLLAND FOOD SERVICE",
			TitleLine1:      "Intelligente Software.",
			TitleLine2:      "Geboren in de Praktijk.",
			Description:     "Vanuit de unieke wisselwerking tussen Holland Food Service en de tech-specialisten van Timo Intelligente ontwikkelden wij het ultieme AI-ecosysteem. Geen software van een afstand, maar intelligentie direct uit de praktijk.\n\nOf het nu gaat om het MKB of complexe zorginstellingen: met Timo optimaliseert u niet alleen uw bedrijfsprocessen, u bent klaar voor de toekomst. Onze technologie, geboren op de werkvloer, is nu beschikbaar voor úw organisatie.",
			ButtonPrimary:   "Bekijk onze oplossingen",
			ButtonSecondary: "Vraag demo aan",
		},
		Solutions: []Solution{
			{
				Id:          "fleet",
				Title:       "Timo Fleet",
				Subtitle:    "Voorheen EcoRoute",
				Description: "Real-time vlootoptimalisatie die CO2-uitstoot minimaliseert en efficiency maximaliseert. Wij bewijzen dat duurzaamheid en leverbetrouwbaarheid hand in hand gaan.",
				DetailTitle: "Strategisch Vlootbeheer",
				DetailText:  "Timo Fleet is uw strategische partner voor modern transportmanagement. Gedreven door AI, gaat dit platform verder dan simpele routeplanning. Wij bieden realtime vlootbeheer, dynamische chauffeursroosters en intelligente kostenreductie.\n\nHet systeem maakt autonome afwegingen op basis van uw bedrijfsdata: is een tijdvenster-boete voordeliger dan een extra voertuig inzetten? Prioriteren we elektrisch rijden voor duurzaamheid? Timo Fleet navigeert niet alleen uw wagens, maar ook uw bedrijfsstrategie.",
				Image:       "https://i.imgur.com/6ULyMKV.jpg",
				IconName:    IconTruck,
			},
			{
				Id:          "tender",
				Title:       "Timo Tender",
				Subtitle:    "Aanbesteding Intelligence",
				Description: "Strategische kwaliteitsbewaking bij tenders. Timo analyseert uw uitvraag tot in de kern en daagt ons uit om de perfecte vertaalslag te maken naar uw wensen.",
				DetailTitle: "De kritische kracht achter de perfecte match.",
				DetailText:  "Een aanbesteding win je niet met standaardantwoorden, maar met de beste oplossing. Timo Tender is onze exclusieve, interne challenger die het team van Holland Food Service scherp houdt.\n\nDeze module schrijft geen blindelings aanbod, maar fungeert als een intelligente kwaliteitsmanager. Timo analyseert uw uitvraag tot in de kern en toetst onze concepten genadeloos: Geven wij écht antwoord op de vraag van de zorgorganisatie? Is dit de beste versie van onszelf?\n\nDaarnaast scant Timo continu de markt op trends, sterktes en zwaktes. Hierdoor ontvangt u geen generiek verhaal, maar een doordacht voorstel dat feitelijk klopt, perfect aansluit op uw wensen en rekening houdt met de wereld van morgen.",
				Image:       "https://i.imgur.com/BHQtcIb.jpg",
				IconName:    IconFileText,
			},
			{
				Id:          "insights",
				Title:       "Timo Insights",
				Subtitle:    "Business Intelligence",
				Description: "Volledige regie over uw keten. Stop met het managen van losse eilandjes. Timo verbindt inkoop, voorraad en financiën in één levend overzicht. Van de eerste bestelling tot de laatste factuur: u ziet direct hoe operationele details uw strategische doelen beïnvloeden.",
				DetailTitle: "Data Driven Decisions",
				DetailText:  "Van achteraf verklaren naar vooraf bijsturen. Stop met sturen in de achteruitkijkspiegel. Timo bundelt al uw stromen – van inkoop tot financiën – in één helder dashboard. Geen verrassingen achteraf, maar real-time grip op uw budgetten en processen.",
				Image:       "https://i.imgur.com/j4wMdCZ.jpg",
				IconName:    IconBarChart3,
			},
			{
				Id:          "connect",
				Title:       "Timo Connect",
				Subtitle:    "Medewerkers App",
				Description: "De centrale hub voor uw personeel. Roosterinzage, communicatie en taakbeheer voor maximale tevredenheid en efficiëntie.",
				DetailTitle: "Employee Engagement",
				DetailText:  "Verhoog de betrokkenheid van uw medewerkers met een moderne app voor nieuws, roosters en verlofaanvragen.",
				Image:       "https://i.imgur.com/BYfL1zs.jpg",
				IconName:    IconUsers,
			},
			{
				Id:          "vision",
				Title:       "Timo Vision",
				Subtitle:    "Beeldoptimalisatie",
				Description: "Uw assortiment, perfect in beeld. Transformeer ruw beeldmateriaal direct naar een strakke, uniforme webshop-ervaring. Timo zorgt volautomatisch voor vrijstaande beelden en consistente kwaliteit. Zodat uw producten de aandacht krijgen die ze verdienen.",
				DetailTitle: "Automated Imaging",
				DetailText:  "Visuele perfectie, volledig geautomatiseerd. Uw assortiment verdient de beste presentatie. Timo Vision transformeert ruwe foto's direct naar professionele, vrijstaande e-commerce beelden. Het resultaat? Een uniforme, aantrekkelijke catalogus die de verkoop stimuleert, zonder dat er een fotograaf aan te pas komt.",
				Image:       "https://i.imgur.com/tO0TYrR.jpg",
				IconName:    IconImage,
			},
		},
		About: AboutContent{
			Tag:                 "ONZE KRACHT",
			TitleLine1:          "Gebouwd op Ervaring.",
			TitleLine2:          "Gedreven door Innovatie.",
			Paragraph1:          "Vanuit Holland Food Service en Timo Vastgoed hebben wij jarenlang de uitdagingen van logistiek en vastgoedmanagement van dichtbij meegemaakt. Deze praktijkervaring vormt de basis van onze AI-oplossingen.",
			Paragraph2:          "Onze software is niet ontwikkeld in een laboratorium, maar geboren uit echte bedrijfsprocessen. Elke feature is getest en verfijnd in de dagelijkse praktijk van onze eigen organisaties.",
			Paragraph3:          "Nu delen wij deze intelligentie met organisaties die klaar zijn voor de volgende stap in digitale transformatie. Samen bouwen we aan slimmere, efficiëntere en duurzamere bedrijfsvoering.",
			Feature1Title:       "Praktijkervaring",
			Feature1Description: "Jarenlange ervaring in logistiek en vastgoedmanagement",
			Feature2Title:       "Innovatie",
			Feature2Description: "Voortdurende ontwikkeling van AI-gedreven oplossingen",
			ImageURL:            "https://picsum.photos/id/1074/600/800",
			ImageCaption:        "Management en Development Team",
			ImageSubcaption:     "De mensen achter Timo Intelligence",
		},
		Partners: PartnersContent{
			Title:               "Partnerschap & Technologie",
			Subtitle:            "De stille kracht achter uw operatie.",
			Description:         "Op zoek naar een samenwerking die verder gaat dan alleen dozen schuiven? Kiest u voor Holland Food Service met Timo Intelligente, dan kiest u voor de perfecte balans tussen logistieke betrouwbaarheid en technologische vooruitgang. Wij bieden de zekerheid van een bewezen partner, met de innovatiekracht van een tech-pionier.",
			Feature1Title:       "Innovatiekracht & Continuïteit",
			Feature1Description: "Stilstand is achteruitgang. Met Timo kiest u niet voor een statisch pakket, maar voor een platform dat continu meegroeit met de markt. Wij leveren tools die uw processen vandaag optimaliseren, en u voorbereiden op de uitdagingen van morgen.",
			Feature2Title:       "Future-Proof Architectuur",
			Feature2Description: "Wij bouwen niet op verouderde servers, maar op een moderne, cloud-native infrastructuur. Voor uw organisatie betekent dit pure snelheid en betrouwbaarheid:\n\nMaximale Uptime: Dankzij ons 'Serverless' platform (Edge Network) is de software altijd en overal razendsnel beschikbaar.\n\nReal-time Data: Wijzigingen zijn direct zichtbaar voor alle gebruikers. Geen vertraging, geen synchronisatiefouten.\n\nSchaalbaarheid: Of u nu 1.000 of 500.000 maaltijden verwerkt; onze architectuur groeit naadloos met u mee zonder prestatieverlies.",
			Feature3Title:       "ISO & Compliance",
			Feature3Description: "In de zorg is dataheiligheid geen discussiepunt, maar een vereiste.\n\nSecurity by Design: Beveiliging zit in de kern van onze code, niet in een schil eromheen.\n\nAVG-Proof: Volledige encryptie van data en strikte scheiding van gegevensstromen.\n\nControleerbaar: Dankzij geautomatiseerde versiebeheer-systemen is elke wijziging in de software traceerbaar en transparant.",
		},
		Contact: ContactContent{
			Title:             "Neem Contact Op",
			IntroText:         "Klaar om uw organisatie te optimaliseren met Timo Intelligence? Wij komen graag langs voor een demo of een gesprek over de mogelijkheden.",
			AddressStreet:     "Bijsterhuizen 2513",
			AddressPostalCode: "6604 LM Wijchen (Gld)",
			AddressCity:       "",
			AddressNote:       "(Gevestigd bij Holland Food Service)",
			Email:             "info@timointelligence.nl",
			Phone:             "",
			FormTitle:         "Stuur ons een bericht",
			ButtonText:        "Verstuur Bericht",
		},
	}
}
