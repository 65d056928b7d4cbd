package locale

// Text is one translatable string.
type Text struct {
	EN string
	ID string
}

// In resolves the Text for the given language.
func (t Text) In(language string) string {
	return Pick(language, t.EN, t.ID)
}

// ServiceItem is one entry of the services page.
type ServiceItem struct {
	Title       Text
	Description Text
}

// SiteContent holds the brochure copy of the public pages.
type SiteContent struct {
	NavHome     Text
	NavServices Text
	NavAbout    Text
	NavContact  Text
	NavLinks    Text

	HeroHeadline    Text
	HeroSubheadline Text
	HeroCTAServices Text
	HeroCTAContact  Text

	AboutLabel       Text
	AboutTitle       Text
	AboutDescription Text

	ServicesLabel       Text
	ServicesTitle       Text
	ServicesDescription Text
	ServiceItems        []ServiceItem

	PartnersTitle Text

	PortfolioTitle       Text
	PortfolioDescription Text

	ContactLabel       Text
	ContactTitle       Text
	ContactDescription Text
	ContactSent        Text
	ContactFailed      Text

	LinksTitle Text

	FooterDescription Text
	FooterRights      Text

	NotFoundTitle   Text
	NotFoundMessage Text
}

// Content is the static site copy, distilled from the studio's bilingual
// marketing text.
var Content = SiteContent{
	NavHome:     Text{EN: "Home", ID: "Beranda"},
	NavServices: Text{EN: "Services", ID: "Layanan"},
	NavAbout:    Text{EN: "About Us", ID: "Tentang Kami"},
	NavContact:  Text{EN: "Contact", ID: "Kontak"},
	NavLinks:    Text{EN: "Links", ID: "Tautan"},

	HeroHeadline: Text{
		EN: "Designing Dreams, Building Reality",
		ID: "Mendesain Impian, Membangun Kenyataan",
	},
	HeroSubheadline: Text{
		EN: "Premium interior design solutions and high-quality HPL materials for residential and commercial spaces in Bandung.",
		ID: "Solusi desain interior premium dan material HPL berkualitas tinggi untuk hunian dan komersial di Bandung.",
	},
	HeroCTAServices: Text{EN: "View Services", ID: "Lihat Layanan"},
	HeroCTAContact:  Text{EN: "Contact Us", ID: "Hubungi Kami"},

	AboutLabel: Text{EN: "About G8 Studio", ID: "Tentang G8 Studio"},
	AboutTitle: Text{
		EN: "Crafting Exceptional Spaces Since Day One",
		ID: "Menciptakan Ruang Luar Biasa Sejak Hari Pertama",
	},
	AboutDescription: Text{
		EN: "G8 Studio is your trusted partner for interior design and premium surface materials. Based in Bandung, we combine creative vision with quality craftsmanship to transform spaces into extraordinary experiences.",
		ID: "G8 Studio adalah mitra terpercaya Anda untuk desain interior dan material permukaan premium. Berbasis di Bandung, kami menggabungkan visi kreatif dengan keahlian berkualitas untuk mengubah ruang menjadi pengalaman luar biasa.",
	},

	ServicesLabel: Text{EN: "Our Services", ID: "Layanan Kami"},
	ServicesTitle: Text{
		EN: "Comprehensive Interior Solutions",
		ID: "Solusi Interior Menyeluruh",
	},
	ServicesDescription: Text{
		EN: "From concept to completion, we provide end-to-end interior design and material supply services.",
		ID: "Dari konsep hingga selesai, kami menyediakan layanan desain interior dan pengadaan material secara menyeluruh.",
	},
	ServiceItems: []ServiceItem{
		{
			Title:       Text{EN: "Interior Design Consultation", ID: "Konsultasi Desain Interior"},
			Description: Text{EN: "Expert guidance to bring your vision to life with personalized design concepts.", ID: "Pendampingan ahli untuk mewujudkan visi Anda dengan konsep desain yang personal."},
		},
		{
			Title:       Text{EN: "Custom Furniture & Built-in", ID: "Furnitur Custom & Built-in"},
			Description: Text{EN: "Bespoke furniture solutions tailored to your space and lifestyle needs.", ID: "Solusi furnitur khusus yang disesuaikan dengan ruang dan gaya hidup Anda."},
		},
		{
			Title:       Text{EN: "HPL & Surface Materials", ID: "HPL & Material Permukaan"},
			Description: Text{EN: "Premium HPL, PVC board, and surface materials from trusted partner brands.", ID: "HPL premium, PVC board, dan material permukaan dari brand terpercaya."},
		},
		{
			Title:       Text{EN: "Residential Projects", ID: "Proyek Residensial"},
			Description: Text{EN: "Complete interior solutions for homes, apartments, and residential complexes.", ID: "Solusi interior lengkap untuk rumah, apartemen, dan kompleks hunian."},
		},
		{
			Title:       Text{EN: "Commercial Projects", ID: "Proyek Komersial"},
			Description: Text{EN: "Professional interior design for offices, retail spaces, and hospitality.", ID: "Desain interior profesional untuk kantor, ruang ritel, dan hospitality."},
		},
		{
			Title:       Text{EN: "Material Consultation", ID: "Konsultasi Material"},
			Description: Text{EN: "Expert advice on selecting the right materials for your project needs.", ID: "Saran ahli dalam memilih material yang tepat untuk kebutuhan proyek Anda."},
		},
	},

	PartnersTitle: Text{EN: "Partner Brands", ID: "Brand Partner"},

	PortfolioTitle: Text{EN: "Our Portfolio", ID: "Portofolio Kami"},
	PortfolioDescription: Text{
		EN: "A selection of residential and commercial projects we have completed.",
		ID: "Pilihan proyek residensial dan komersial yang telah kami selesaikan.",
	},

	ContactLabel: Text{EN: "Get in Touch", ID: "Hubungi Kami"},
	ContactTitle: Text{EN: "Contact Us", ID: "Kontak Kami"},
	ContactDescription: Text{
		EN: "Have a project in mind? We'd love to hear from you.",
		ID: "Punya rencana proyek? Kami senang mendengarnya dari Anda.",
	},
	ContactSent: Text{
		EN: "Thank you! Your message has been sent.",
		ID: "Terima kasih! Pesan Anda telah terkirim.",
	},
	ContactFailed: Text{
		EN: "Failed to send message. Please try again later.",
		ID: "Gagal mengirim pesan. Silakan coba lagi nanti.",
	},

	LinksTitle: Text{EN: "G8 Studio Links", ID: "Tautan G8 Studio"},

	FooterDescription: Text{
		EN: "Premium interior design solutions and high-quality HPL materials for your dream space.",
		ID: "Solusi desain interior premium dan material HPL berkualitas tinggi untuk ruang impian Anda.",
	},
	FooterRights: Text{EN: "All rights reserved.", ID: "Hak cipta dilindungi."},

	NotFoundTitle: Text{EN: "Page Not Found", ID: "Halaman Tidak Ditemukan"},
	NotFoundMessage: Text{
		EN: "The page you are looking for does not exist or has been moved.",
		ID: "Halaman yang Anda cari tidak tersedia atau telah dipindahkan.",
	},
}
