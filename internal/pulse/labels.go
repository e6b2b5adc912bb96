package pulse

// Fixed label tables. Indices into these tables always come from Euclidean
// modulo, so pre-Genesis day indices resolve to valid labels.

// WeekdayNames is the 6-entry weekday cycle.
var WeekdayNames = [DaysPerWeek]string{
	"Solhara",
	"Aquaris",
	"Flamora",
	"Verdari",
	"Sonari",
	"Kaelith",
}

// ChakraNames carries 7 entries, but the day cycle indexes it mod 6, so the
// seventh ("Krown") is never produced by the weekday mapping. The mismatch
// is inherited from the published label tables and is kept as-is rather
// than resolved here.
var ChakraNames = [7]string{
	"Root",
	"Sacral",
	"Solar Plexus",
	"Heart",
	"Throat",
	"Third Eye",
	"Krown",
}

// MonthNames labels the 8 months of the 336-day year.
var MonthNames = [MonthsPerYear]string{
	"Aethon",
	"Virelai",
	"Solari",
	"Amarin",
	"Kaelus",
	"Umbriel",
	"Noctura",
	"Liora",
}

// WeekNames labels the 7 weeks of each 42-day month.
var WeekNames = [WeeksPerMonth]string{
	"Awakening Flame",
	"Flowing Heart",
	"Radiant Will",
	"Harmonik Voice",
	"Inner Mirror",
	"Dreamfire Memory",
	"Krowned Light",
}
