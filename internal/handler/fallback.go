package handler

import (
	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/locale"
)

// Demo datasets served to the public site when the database is unreachable.
// They are never written anywhere and never appear on admin routes; responses
// built from them carry fallback=true so the frontend can show a notice.

const fallbackMessageEN = "Showing sample data while the service recovers."
const fallbackMessageMN = "Системд түр саатал гарсан тул жишээ мэдээлэл харуулж байна."

func fallbackMessage(language string) string {
	return locale.Pick(language, fallbackMessageEN, fallbackMessageMN)
}

func demoServices(language string) []db.Service {
	if locale.NormalizeLanguage(language) == locale.LanguageEnglish {
		return []db.Service{
			{Language: locale.LanguageEnglish, Title: "University admission consulting", Summary: "Guidance through applications to Chinese universities.", SortOrder: 1, IsActive: true},
			{Language: locale.LanguageEnglish, Title: "Scholarship applications", Summary: "CSC and university scholarship preparation.", SortOrder: 2, IsActive: true},
			{Language: locale.LanguageEnglish, Title: "Visa and document support", Summary: "Student visa paperwork from start to finish.", SortOrder: 3, IsActive: true},
		}
	}
	return []db.Service{
		{Language: locale.LanguageMongolian, Title: "Их сургуулийн элсэлтийн зөвлөгөө", Summary: "Хятадын их сургуулиудад элсэхэд бүрэн дэмжлэг.", SortOrder: 1, IsActive: true},
		{Language: locale.LanguageMongolian, Title: "Тэтгэлгийн өргөдөл", Summary: "CSC болон сургуулийн тэтгэлэгт бэлтгэх.", SortOrder: 2, IsActive: true},
		{Language: locale.LanguageMongolian, Title: "Виз, бичиг баримтын туслалцаа", Summary: "Оюутны визийн бүрдүүлбэрийг эхнээс нь дуустал.", SortOrder: 3, IsActive: true},
	}
}

func demoTestimonials(language string) []db.Testimonial {
	if locale.NormalizeLanguage(language) == locale.LanguageEnglish {
		return []db.Testimonial{
			{Language: locale.LanguageEnglish, Author: "B. Anujin", Role: "Tsinghua University, 2024", Quote: "The team walked me through every step of my scholarship application.", Rating: 5, SortOrder: 1, IsActive: true},
			{Language: locale.LanguageEnglish, Author: "E. Temuulen", Role: "Beijing Language and Culture University", Quote: "From documents to the visa, everything was handled on time.", Rating: 5, SortOrder: 2, IsActive: true},
		}
	}
	return []db.Testimonial{
		{Language: locale.LanguageMongolian, Author: "Б. Анужин", Role: "Цинхуа их сургууль, 2024", Quote: "Тэтгэлгийн өргөдлийн алхам бүрд минь тусалсан.", Rating: 5, SortOrder: 1, IsActive: true},
		{Language: locale.LanguageMongolian, Author: "Э. Тэмүүлэн", Role: "Бээжингийн хэл соёлын их сургууль", Quote: "Бичиг баримтаас виз хүртэл бүгдийг цагт нь амжуулсан.", Rating: 5, SortOrder: 2, IsActive: true},
	}
}

func demoTeam(language string) []db.TeamMember {
	if locale.NormalizeLanguage(language) == locale.LanguageEnglish {
		return []db.TeamMember{
			{Language: locale.LanguageEnglish, Name: "S. Khulan", Role: "Senior consultant", SortOrder: 1, IsActive: true},
			{Language: locale.LanguageEnglish, Name: "D. Bilguun", Role: "Admissions advisor", SortOrder: 2, IsActive: true},
		}
	}
	return []db.TeamMember{
		{Language: locale.LanguageMongolian, Name: "С. Хулан", Role: "Ахлах зөвлөх", SortOrder: 1, IsActive: true},
		{Language: locale.LanguageMongolian, Name: "Д. Билгүүн", Role: "Элсэлтийн зөвлөх", SortOrder: 2, IsActive: true},
	}
}

func demoPartners() []db.Partner {
	return []db.Partner{
		{Name: "Tsinghua University", LogoURL: "/static/img/partners/tsinghua.png", SortOrder: 1, IsActive: true},
		{Name: "Peking University", LogoURL: "/static/img/partners/pku.png", SortOrder: 2, IsActive: true},
		{Name: "Beijing Language and Culture University", LogoURL: "/static/img/partners/blcu.png", SortOrder: 3, IsActive: true},
	}
}
