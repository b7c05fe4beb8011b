package anonymize

type name struct {
	family string
	given  string
}

var asciiNames = []name{
	{"Smith", "John"}, {"Doe", "Jane"}, {"Johnson", "Robert"},
	{"Williams", "Mary"}, {"Brown", "James"}, {"Davis", "Patricia"},
	{"Miller", "Michael"}, {"Wilson", "Jennifer"}, {"Moore", "David"},
	{"Taylor", "Linda"}, {"Anderson", "William"}, {"Thomas", "Barbara"},
	{"Jackson", "Richard"}, {"White", "Susan"}, {"Harris", "Joseph"},
	{"Martin", "Karen"},
}

// estonianNames packs as many Õ/Ä/Ö/Ü/Š/Ž characters as possible to
// exercise transliteration and encoding paths.
var estonianNames = []name{
	{"Ööümin", "Õgvardž"}, {"Täägõrš", "Žüöä"},
	{"Põldöäš", "Küõželli"}, {"Šžõän", "ÜÖÕla"},
	{"Kääröž", "Õüšä"}, {"Mõöäžus", "Tõüš"},
	{"Sõštarä", "ÕÖŽenna"}, {"Pääšöke", "Süõrž"},
	{"Lõäžmus", "Räüš"}, {"Väöžõr", "ÖÕŠün"},
	{"Nõžäk", "Käöüš"}, {"Tõžissön", "Õäže"},
	{"Räõšla", "Jüžeri"}, {"Kõržäü", "Šõölä"},
	{"Železõä", "Üöšle"}, {"Põäžerü", "Mäöüšž"},
}

var asciiStreets = []string{
	"Tamme tee 5", "Oak Street 12", "Maple Avenue 7", "Cedar Lane 3",
	"Elm Road 21", "Birch Drive 9", "Pine Street 14", "Willow Lane 6",
	"Main Street 33", "Park Avenue 18", "River Road 25", "Lake Drive 10",
	"Hill Street 42", "Forest Lane 8", "Valley Road 15", "Bridge Street 77",
}

var estonianStreets = []string{
	"Tõnisäö tee 5", "Pärnuõ mnt 42", "Õäžu tänav 3", "Küöše tee 8",
	"Süõža põik 11", "Väörü tee 7", "Lõžä mnt 15", "Šöäü tän 9",
	"Põäža tee 22", "Täüžõ tn 6", "Käöšõ põik 13", "Räüža mnt 4",
	"Žõäü tee 19", "Õäšü tn 31", "Üžõä allee 2", "Möõšä tee 17",
}

var asciiCities = []string{
	"Tallinn", "Tartu", "Springfield", "Riverside",
	"Greenville", "Fairview", "Madison", "Georgetown",
	"Portland", "Bristol", "Chester", "Lakewood",
	"Ashland", "Clayton", "Franklin", "Kingston",
}

var estonianCities = []string{
	"Tõäželu", "Pärõü", "Küõšavere", "Sääževald",
	"Võärü", "Õäžüla", "Lõäškü", "Šöäüri",
	"Räöžõ", "Nõüšä", "Täöžõkü", "Põžäle",
	"Käüšõla", "Möäžü", "Üžõävere", "Jõäšü",
}
