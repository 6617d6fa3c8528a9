package content

import "github.com/Zerogne/Haneducation-sub000/internal/locale"

// defaultTables is the single authoritative copy of the fallback content the
// site renders before admins have written anything. Mongolian covers every
// section; English covers the sections the original site shipped bilingually.
var defaultTables = map[Section]map[string]Payload{
	SectionHero: {
		locale.LanguageMongolian: HeroContent{
			Title:       "Хятадад тэтгэлэгтэй суралцах боломж",
			Subtitle:    "Han Education — таны ирээдүйн гүүр",
			Description: "Бид сурагч бүрд тохирсон хөтөлбөр, тэтгэлэг, их сургуулийг олоход нь тусалж, элсэлтийн бүх үе шатад хамт явна.",
			CTALabel:    "Бүртгүүлэх",
			CTAURL:      "/register",
			Stats: []Stat{
				{Label: "Амжилттай элсэлт", Value: "250+"},
				{Label: "Хамтрагч их сургууль", Value: "40+"},
				{Label: "Туршлага", Value: "8 жил"},
			},
		},
		locale.LanguageEnglish: HeroContent{
			Title:       "Study in China with a scholarship",
			Subtitle:    "Han Education — your bridge to the future",
			Description: "We match every student with the right program, scholarship and university, and stay with you through every step of admission.",
			CTALabel:    "Register",
			CTAURL:      "/register",
			Stats: []Stat{
				{Label: "Successful admissions", Value: "250+"},
				{Label: "Partner universities", Value: "40+"},
				{Label: "Years of experience", Value: "8"},
			},
		},
	},
	SectionAbout: {
		locale.LanguageMongolian: AboutContent{
			Title:    "Бидний тухай",
			Subtitle: "Боловсролын зөвлөх үйлчилгээ",
			Body:     "Han Education нь Монгол сурагчдыг Хятадын шилдэг их, дээд сургуулиудад элсүүлэх чиглэлээр мэргэшсэн баг юм. Бид бичиг баримт бүрдүүлэлтээс эхлээд нутагшилт хүртэлх бүх үйл явцыг хариуцдаг.",
			Features: []Feature{
				{Title: "Мэргэжлийн баг", Description: "Хятадад суралцаж төгссөн зөвлөхүүд"},
				{Title: "Баталгаатай үр дүн", Description: "Элсэлтийн өмнөх болон дараах бүрэн дэмжлэг"},
			},
		},
		locale.LanguageEnglish: AboutContent{
			Title:    "About us",
			Subtitle: "Education consulting",
			Body:     "Han Education specializes in placing Mongolian students at leading Chinese universities, handling everything from paperwork to settling in.",
			Features: []Feature{
				{Title: "Experienced advisors", Description: "Counselors who studied in China themselves"},
				{Title: "End-to-end support", Description: "Full assistance before and after admission"},
			},
		},
	},
	SectionServices: {
		locale.LanguageMongolian: ServicesContent{
			Title:    "Манай үйлчилгээ",
			Subtitle: "Элсэлтийн бүх үе шатад",
			Items: []Feature{
				{Title: "Тэтгэлгийн зөвлөгөө", Description: "Засгийн газрын болон их сургуулийн тэтгэлэг"},
				{Title: "Бичиг баримт", Description: "Өргөдөл, орчуулга, баталгаажуулалт"},
				{Title: "Визний дэмжлэг", Description: "Суралцах визний бүрдүүлэлт"},
				{Title: "Хэлний бэлтгэл", Description: "HSK шалгалтын бэлтгэл курс"},
			},
		},
		locale.LanguageEnglish: ServicesContent{
			Title:    "Our services",
			Subtitle: "Support at every stage",
			Items: []Feature{
				{Title: "Scholarship advising", Description: "Government and university scholarships"},
				{Title: "Documents", Description: "Applications, translation, legalization"},
				{Title: "Visa support", Description: "Student visa preparation"},
				{Title: "Language preparation", Description: "HSK exam courses"},
			},
		},
	},
	SectionWhyChina: {
		locale.LanguageMongolian: WhyChinaContent{
			Title:    "Яагаад Хятадад суралцах вэ?",
			Subtitle: "Дэлхийд өрсөлдөхүйц боловсрол",
			Reasons: []Feature{
				{Title: "Чанартай боловсрол", Description: "Дэлхийн шилдэг 100-д багтдаг их сургуулиуд"},
				{Title: "Тэтгэлгийн өргөн боломж", Description: "Сургалтын төлбөр, дотуур байр, амьжиргааны тэтгэлэг"},
				{Title: "Ойрхон зай", Description: "Гэртээ ойрхон, зардал багатай"},
				{Title: "Карьерын давуу тал", Description: "Хятад хэлтэй мэргэжилтний эрэлт өндөр"},
			},
			Stats: []Stat{
				{Label: "Их, дээд сургууль", Value: "3000+"},
				{Label: "Олон улсын оюутан", Value: "490 мянга"},
			},
		},
	},
	SectionTestimonials: {
		locale.LanguageMongolian: TestimonialsContent{
			Title:    "Суралцагчдын сэтгэгдэл",
			Subtitle: "Бидэнтэй хамт зорилгодоо хүрсэн хүүхдүүд",
		},
	},
	SectionTeam: {
		locale.LanguageMongolian: TeamContent{
			Title:    "Манай баг",
			Subtitle: "Туршлагатай зөвлөхүүд",
		},
	},
	SectionPartners: {
		locale.LanguageMongolian: PartnersContent{
			Title:    "Хамтрагч их сургуулиуд",
			Subtitle: "Бид дараах сургуулиудтай шууд гэрээтэй ажилладаг",
		},
	},
	SectionContact: {
		locale.LanguageMongolian: ContactContent{
			Title:        "Бидэнтэй холбогдох",
			Subtitle:     "Үнэгүй зөвлөгөө аваарай",
			Phone:        "+976 7011 1234",
			Email:        "info@haneducation.mn",
			Address:      "Улаанбаатар хот, Сүхбаатар дүүрэг, Их сургуулийн гудамж 5",
			WorkingHours: "Да–Ба 09:00–18:00",
		},
		locale.LanguageEnglish: ContactContent{
			Title:        "Contact us",
			Subtitle:     "Get a free consultation",
			Phone:        "+976 7011 1234",
			Email:        "info@haneducation.mn",
			Address:      "University Street 5, Sukhbaatar District, Ulaanbaatar",
			WorkingHours: "Mon–Sat 09:00–18:00",
		},
	},
	SectionFooter: {
		locale.LanguageMongolian: FooterContent{
			Tagline:   "Таны ирээдүйг хамтдаа бүтээнэ",
			Copyright: "© Han Education",
			Links: []Link{
				{Label: "Үйлчилгээ", URL: "/services"},
				{Label: "Бүртгэл", URL: "/register"},
			},
		},
		locale.LanguageEnglish: FooterContent{
			Tagline:   "Building your future together",
			Copyright: "© Han Education",
			Links: []Link{
				{Label: "Services", URL: "/services"},
				{Label: "Register", URL: "/register"},
			},
		},
	},
}

// Default looks up the fallback payload for an exact (section, language)
// pair. There is deliberately no cross-language fallback here: a miss means
// the caller moves on to the neutral shape.
func Default(section Section, language string) (Payload, bool) {
	byLanguage, ok := defaultTables[section]
	if !ok {
		return nil, false
	}
	payload, ok := byLanguage[language]
	return payload, ok
}
