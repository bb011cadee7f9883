package ammo

// Round holds the combat attributes for one ammunition type. Pellets is
// zero for single-projectile loads; for buckshot, Damage is per pellet.
type Round struct {
	Category    string
	Damage      int
	Pellets     int
	Penetration int
}

// rounds maps upper-cased ammo names to their attributes.
var rounds = map[string]Round{
	// 12 Gauge Shot
	"5.25MM BUCKSHOT":          {"12 Gauge Shot", 37, 8, 1},
	"8.5MM MAGNUM BUCKSHOT":    {"12 Gauge Shot", 50, 8, 2},
	"6.5MM EXPRESS BUCKSHOT":   {"12 Gauge Shot", 35, 9, 3},
	"7MM BUCKSHOT":             {"12 Gauge Shot", 39, 8, 3},
	"PIRANHA":                  {"12 Gauge Shot", 25, 10, 24},
	"FLECHETTE":                {"12 Gauge Shot", 25, 8, 31},

	// 12 Gauge Slugs
	"RIP":                       {"12 Gauge Slugs", 265, 0, 2},
	"SUPERFORMANCE HP SLUG":     {"12 Gauge Slugs", 220, 0, 5},
	"GRIZZLY 40 SLUG":           {"12 Gauge Slugs", 190, 0, 12},
	"COPPER SABOT HP SLUG":      {"12 Gauge Slugs", 206, 0, 14},
	"LEAD SLUG":                 {"12 Gauge Slugs", 167, 0, 15},
	"DUAL SABOT SLUG":           {"12 Gauge Slugs", 85, 2, 17},
	"POLEVA-3 SLUG":             {"12 Gauge Slugs", 140, 0, 17},
	"FTX CUSTOM LITE SLUG":      {"12 Gauge Slugs", 183, 0, 20},
	"POLEVA-6U SLUG":            {"12 Gauge Slugs", 150, 0, 20},
	"MAKESHIFT .50 BMG SLUG":    {"12 Gauge Slugs", 197, 0, 26},
	"AP-20 ARMOR-PIERCING SLUG": {"12 Gauge Slugs", 164, 0, 37},

	// 20 Gauge
	"5.6MM BUCKSHOT":          {"20 Gauge", 26, 8, 1},
	"6.2MM BUCKSHOT":          {"20 Gauge", 22, 8, 2},
	"7.5MM BUCKSHOT":          {"20 Gauge", 25, 8, 3},
	"7.3MM BUCKSHOT":          {"20 Gauge", 23, 9, 3},
	"DEVASTATOR SLUG":         {"20 Gauge", 198, 0, 5},
	"POLEVA-3 SLUG (20GA)":    {"20 Gauge", 120, 0, 14},
	"STAR SLUG":               {"20 Gauge", 154, 0, 16},
	"POLEVA-6U SLUG (20GA)":   {"20 Gauge", 135, 0, 17},
	"TSS ARMOR PIERCING SLUG": {"20 Gauge", 155, 0, 30},
	"DANGEROUS GAME SLUG":     {"20 Gauge", 143, 0, 25},
	"FLECHETTE (20GA)":        {"20 Gauge", 20, 0, 24},

	// 23x75 mm
	"ZVEZDA FLASHBANG ROUND": {"23x75 mm", 0, 0, 0},
	"SHRAPNEL-25 BUCKSHOT":   {"23x75 mm", 78, 8, 10},
	"SHRAPNEL-10 BUCKSHOT":   {"23x75 mm", 87, 8, 11},
	"BARRIKADA SLUG":         {"23x75 mm", 192, 0, 39},

	// 9x18 mm
	"PM SP8 GZH":    {"9x18 mm", 67, 0, 1},
	"PM SP7 GZH":    {"9x18 mm", 77, 0, 2},
	"PM PSV":        {"9x18 mm", 69, 0, 3},
	"PM P GZH":      {"9x18 mm", 50, 0, 5},
	"PM PSO GZH":    {"9x18 mm", 54, 0, 5},
	"PM PS GS PPO":  {"9x18 mm", 55, 0, 6},
	"PM PRS GS":     {"9x18 mm", 58, 0, 6},
	"PM PPE GZH":    {"9x18 mm", 61, 0, 7},
	"PM PPT GZH":    {"9x18 mm", 59, 0, 8},
	"PM PST GZH":    {"9x18 mm", 50, 0, 12},
	"PM RG028 GZH":  {"9x18 mm", 65, 0, 13},
	"PM BZHT GZH":   {"9x18 mm", 53, 0, 18},
	"PMM PSTM GZH":  {"9x18 mm", 58, 0, 24},
	"PM PBM GZH":    {"9x18 mm", 40, 0, 28},

	// 7.62x25 mm
	"TT LRNPC":   {"7.62x25 mm", 66, 0, 7},
	"TT LRN":     {"7.62x25 mm", 64, 0, 8},
	"TT FMJ43":   {"7.62x25 mm", 60, 0, 11},
	"TT AKBS":    {"7.62x25 mm", 58, 0, 12},
	"TT P GL":    {"7.62x25 mm", 58, 0, 14},
	"TT PT GZH":  {"7.62x25 mm", 55, 0, 18},
	"TT PST GZH": {"7.62x25 mm", 50, 0, 25},

	// 9x19 mm
	"RIP (9X19)":     {"9x19 mm", 102, 0, 2},
	"QUAKEMAKER":     {"9x19 mm", 85, 0, 8},
	"PSO GZH (9X19)": {"9x19 mm", 59, 0, 10},
	"LUGER CCI":      {"9x19 mm", 70, 0, 10},
	"T GZH (9X19)":   {"9x19 mm", 58, 0, 14},
	"M882":           {"9x19 mm", 56, 0, 18},
	"PST GZH (9X19)": {"9x19 mm", 54, 0, 20},
	"AP 6.3":         {"9x19 mm", 52, 0, 30},
	"PBP GZH":        {"9x19 mm", 44, 0, 39},

	// .45 ACP
	"ACP RIP":            {".45 ACP", 130, 0, 3},
	"ACP HYDRA-SHOK":     {".45 ACP", 100, 0, 13},
	"ACP LASERMATCH FMJ": {".45 ACP", 76, 0, 19},
	"ACP MATCH FMJ":      {".45 ACP", 72, 0, 25},
	"ACP AP":             {".45 ACP", 66, 0, 38},

	// .50
	"AE JHP":          {".50", 147, 0, 12},
	"HAWK JSP":        {".50", 122, 0, 26},
	"AE COPPER SOLID": {".50", 94, 0, 33},
	"AE FMJ":          {".50", 85, 0, 40},

	// 9x21 mm
	"PE GZH":         {"9x21 mm", 80, 0, 15},
	"P GZH (9X21)":   {"9x21 mm", 65, 0, 18},
	"PS GZH (9X21)":  {"9x21 mm", 59, 0, 22},
	"7U4":            {"9x21 mm", 53, 0, 27},
	"BT GZH (9X21)":  {"9x21 mm", 52, 0, 32},
	"7N42":           {"9x21 mm", 49, 0, 38},

	// .357 Magnum
	"SOFT POINT": {".357 Magnum", 108, 0, 12},
	"HP (.357)":  {".357 Magnum", 99, 0, 18},
	"JHP":        {".357 Magnum", 88, 0, 24},
	"FMJ (.357)": {".357 Magnum", 70, 0, 35},

	// 5.7x28 mm
	"R37.F":   {"5.7x28 mm", 98, 0, 8},
	"SS198LF": {"5.7x28 mm", 70, 0, 17},
	"R37.X":   {"5.7x28 mm", 81, 0, 11},
	"SS197SR": {"5.7x28 mm", 62, 0, 25},
	"L191":    {"5.7x28 mm", 53, 0, 33},
	"SB193":   {"5.7x28 mm", 59, 0, 27},
	"SS190":   {"5.7x28 mm", 49, 0, 37},

	// 4.6x30 mm
	"ACTION SX":   {"4.6x30 mm", 65, 0, 18},
	"SUBSONIC SX": {"4.6x30 mm", 52, 0, 23},
	"JSP SX":      {"4.6x30 mm", 46, 0, 32},
	"FMJ SX":      {"4.6x30 mm", 43, 0, 40},
	"AP SX":       {"4.6x30 mm", 35, 0, 53},

	// 9x39 mm
	"FMJ (9X39)": {"9x39 mm", 75, 0, 17},
	"SP-5 GS":    {"9x39 mm", 71, 0, 28},
	"SPP GS":     {"9x39 mm", 68, 0, 35},
	"PAB-9 GS":   {"9x39 mm", 62, 0, 43},
	"SP-6 GS":    {"9x39 mm", 60, 0, 48},

	// .366 TKM
	"TKM GEKSA": {".366 TKM", 110, 0, 14},
	"TKM FMJ":   {".366 TKM", 98, 0, 23},
	"TKM EKO":   {".366 TKM", 73, 0, 30},
	"TKM AP-M":  {".366 TKM", 90, 0, 42},

	// 5.45x39 mm
	"HP (5.45)":       {"5.45x39 mm", 76, 0, 9},
	"PRS GS":          {"5.45x39 mm", 70, 0, 13},
	"SP (5.45)":       {"5.45x39 mm", 67, 0, 15},
	"US GS":           {"5.45x39 mm", 65, 0, 17},
	"T GS":            {"5.45x39 mm", 59, 0, 20},
	"FMJ (5.45)":      {"5.45x39 mm", 55, 0, 24},
	"PS GS":           {"5.45x39 mm", 56, 0, 28},
	"PP GS":           {"5.45x39 mm", 51, 0, 34},
	"BT GS":           {"5.45x39 mm", 54, 0, 37},
	"7N40":            {"5.45x39 mm", 55, 0, 42},
	"BP GS":           {"5.45x39 mm", 48, 0, 45},
	"PPBS GS IGOLNIK": {"5.45x39 mm", 37, 0, 62},

	// 5.56x45 mm
	"WARMAGEDDON":  {"5.56x45 mm", 88, 0, 3},
	"HP (5.56)":    {"5.56x45 mm", 79, 0, 7},
	"MK 255 MOD 0": {"5.56x45 mm", 72, 0, 11},
	"M856":         {"5.56x45 mm", 60, 0, 18},
	"FMJ (5.56)":   {"5.56x45 mm", 57, 0, 23},
	"M855":         {"5.56x45 mm", 54, 0, 31},
	"MK 318 MOD 0": {"5.56x45 mm", 53, 0, 33},
	"M856A1":       {"5.56x45 mm", 52, 0, 38},
	"M855A1":       {"5.56x45 mm", 49, 0, 44},
	"M995":         {"5.56x45 mm", 42, 0, 53},
	"SSA AP":       {"5.56x45 mm", 38, 0, 57},

	// 7.62x39 mm
	"HP (7.62X39)":     {"7.62x39 mm", 80, 0, 15},
	"SP (7.62X39)":     {"7.62x39 mm", 68, 0, 20},
	"FMJ (7.62X39)":    {"7.62x39 mm", 63, 0, 26},
	"US GZH":           {"7.62x39 mm", 56, 0, 29},
	"T-45M1 GZH":       {"7.62x39 mm", 65, 0, 30},
	"PS GZH (7.62X39)": {"7.62x39 mm", 61, 0, 35},
	"PP (7.62X39)":     {"7.62x39 mm", 59, 0, 41},
	"BP GZH":           {"7.62x39 mm", 58, 0, 47},
	"MAI AP":           {"7.62x39 mm", 53, 0, 58},

	// .300 Blackout
	"BLACKOUT WHISPER":    {".300 Blackout", 90, 0, 14},
	"BLACKOUT V-MAX":      {".300 Blackout", 72, 0, 20},
	"BLACKOUT BCP FMJ":    {".300 Blackout", 60, 0, 30},
	"BLACKOUT M62 TRACER": {".300 Blackout", 54, 0, 36},
	"BLACKOUT CBJ":        {".300 Blackout", 58, 0, 43},
	"BLACKOUT AP":         {".300 Blackout", 51, 0, 48},

	// 6.8x51 mm
	"SIG FMJ":    {"6.8x51 mm", 80, 0, 36},
	"SIG HYBRID": {"6.8x51 mm", 72, 0, 47},

	// 7.62x51 mm
	"ULTRA NOSLER":      {"7.62x51 mm", 105, 0, 15},
	"TCW SP":            {"7.62x51 mm", 85, 0, 30},
	"BCP FMJ (7.62X51)": {"7.62x51 mm", 83, 0, 37},
	"M62 TRACER":        {"7.62x51 mm", 82, 0, 42},
	"M80":               {"7.62x51 mm", 80, 0, 43},
	"M61":               {"7.62x51 mm", 70, 0, 64},
	"M993":              {"7.62x51 mm", 67, 0, 70},
	"M80A1":             {"7.62x51 mm", 73, 0, 60},

	// 7.62x54R
	"HP BT":             {"7.62x54R", 102, 0, 23},
	"SP BT":             {"7.62x54R", 92, 0, 27},
	"FMJ (7.62X54R)":    {"7.62x54R", 84, 0, 33},
	"T-46M GZH":         {"7.62x54R", 82, 0, 41},
	"LPS GZH":           {"7.62x54R", 81, 0, 42},
	"PS GZH (7.62X54R)": {"7.62x54R", 84, 0, 45},
	"BT GZH":            {"7.62x54R", 78, 0, 55},
	"SNB GZH":           {"7.62x54R", 75, 0, 62},
	"BS GS":             {"7.62x54R", 72, 0, 70},

	// 12.7x55 mm
	"PS12A": {"12.7x55 mm", 165, 0, 10},
	"PS12":  {"12.7x55 mm", 115, 0, 28},
	"PS12B": {"12.7x55 mm", 102, 0, 46},

	// .338 Lapua Magnum
	"TAC-X":      {".338 Lapua Magnum", 196, 0, 18},
	"UCW":        {".338 Lapua Magnum", 142, 0, 32},
	"FMJ (.338)": {".338 Lapua Magnum", 122, 0, 47},
	"AP (.338)":  {".338 Lapua Magnum", 115, 0, 79},

	// Mounted Weapons
	"30MM GRENADE":      {"Mounted Weapons", 199, 0, 1},
	"12.7X108MM":        {"Mounted Weapons", 182, 0, 88},
	"12.7X108MM TRACER": {"Mounted Weapons", 199, 0, 80},

	// Other
	"40MM BUCKSHOT GRENADE": {"Other", 160, 0, 5},
}
