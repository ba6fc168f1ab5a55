package classifier

// Tag names a service sub-category.
type Tag string

const (
	CarWashCenter  Tag = "car_wash_center"
	CarWashHome    Tag = "car_wash_home"
	CarWash        Tag = "car_wash"
	LaundryIroning Tag = "laundry_ironing"
	CarpetSofa     Tag = "carpet_sofa"
	Office         Tag = "office"
	Factory        Tag = "factory"
	HotelAirbnb    Tag = "hotel_airbnb"
	Pool           Tag = "pool"
	Shoes          Tag = "shoes"
	Kitchen        Tag = "kitchen"
	Housekeeping   Tag = "housekeeping"
)

// Keywords are lower-case substrings, one list per language field.
type Keywords struct {
	FR []string
	AR []string
	EN []string
}

// Rule is one row of the routing table.
//
// A rule matches when any Positive keyword is present, every Requires rule
// matches, and neither its ExtraExclusions nor the Positive keywords of a rule
// listed in Excludes are present.
type Rule struct {
	Tag             Tag
	Positive        Keywords
	Requires        []Tag
	Excludes        []Tag
	ExtraExclusions Keywords
}

// DefaultPriority is the dispatch order; the first matching rule wins.
// Within each overlapping pair the earlier rule wins when both keyword sets
// are present, because the later one excludes it.
var DefaultPriority = []Tag{
	CarWashCenter,
	CarWashHome,
	CarWash,
	LaundryIroning,
	CarpetSofa,
	Office,
	Factory,
	HotelAirbnb,
	Pool,
	Shoes,
	Kitchen,
	Housekeeping,
}

var DefaultRules = []Rule{
	{
		Tag: CarWash,
		Positive: Keywords{
			FR: []string{"voiture", "véhicule", "vehicule", "lavage auto"},
			AR: []string{"سيار", "مركبة"},
			EN: []string{"car wash", "car cleaning", "vehicle", "auto detailing"},
		},
	},
	{
		Tag:      CarWashCenter,
		Requires: []Tag{CarWash},
		Positive: Keywords{
			FR: []string{"centre", "station", "agence"},
			AR: []string{"مركز", "محطة", "وكالة"},
			EN: []string{"center", "centre", "station"},
		},
	},
	{
		Tag:      CarWashHome,
		Requires: []Tag{CarWash},
		Excludes: []Tag{CarWashCenter},
		Positive: Keywords{
			FR: []string{"domicile", "chez vous", "chez soi", "à la maison"},
			AR: []string{"منزل", "البيت"},
			EN: []string{"home", "doorstep"},
		},
	},
	{
		Tag:      LaundryIroning,
		Excludes: []Tag{CarWash},
		Positive: Keywords{
			FR: []string{"repassage", "blanchisserie", "pressing", "linge"},
			AR: []string{"كي الملابس", "الكي", "تصبين", "غسيل الملابس", "مصبنة"},
			EN: []string{"laundry", "ironing", "dry clean"},
		},
	},
	{
		Tag: CarpetSofa,
		Positive: Keywords{
			FR: []string{"tapis", "canapé", "canape", "moquette", "fauteuil", "matelas"},
			AR: []string{"زربية", "زرابي", "سجاد", "كنب", "فوتاي"},
			EN: []string{"carpet", "rug", "sofa", "couch", "upholstery", "mattress"},
		},
	},
	{
		Tag: Office,
		Positive: Keywords{
			FR: []string{"bureau"},
			AR: []string{"مكتب", "مكاتب"},
			EN: []string{"office"},
		},
	},
	{
		Tag:      Factory,
		Excludes: []Tag{Office},
		Positive: Keywords{
			FR: []string{"usine", "entrepôt", "entrepot", "industriel"},
			AR: []string{"مصنع", "مصانع", "معمل"},
			EN: []string{"factory", "warehouse", "industrial"},
		},
	},
	{
		Tag: HotelAirbnb,
		Positive: Keywords{
			FR: []string{"airbnb", "hôtel", "hotel", "maison d'hôtes", "riad", "location courte"},
			AR: []string{"فندق", "فنادق", "ايربنب", "إيربنب"},
			EN: []string{"airbnb", "hotel", "guest house", "guesthouse", "short-term rental"},
		},
	},
	{
		Tag: Pool,
		Positive: Keywords{
			FR: []string{"piscine"},
			AR: []string{"مسبح", "حوض السباحة", "المسابح"},
			EN: []string{"pool", "swimming"},
		},
	},
	{
		Tag: Shoes,
		Positive: Keywords{
			FR: []string{"chaussure", "basket", "sneaker"},
			AR: []string{"حذاء", "أحذية", "صباط", "سبرديل"},
			EN: []string{"shoe", "sneaker", "boots"},
		},
	},
	{
		Tag: Kitchen,
		Positive: Keywords{
			FR: []string{"cuisine"},
			AR: []string{"مطبخ"},
			EN: []string{"kitchen"},
		},
	},
	{
		Tag: Housekeeping,
		Excludes: []Tag{
			CarpetSofa, CarWash, LaundryIroning, Office, Factory, HotelAirbnb, Pool, Shoes,
		},
		Positive: Keywords{
			FR: []string{"ménage", "menage", "ménagère", "menagere", "nettoyage", "entretien"},
			AR: []string{"تنظيف", "نظافة", "خادمة", "مدبرة"},
			EN: []string{"housekeeping", "cleaning", "maid", "house"},
		},
	},
}
