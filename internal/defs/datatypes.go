package defs

// ComponentDef names one component position of a composite data type.
type ComponentDef struct {
	Name string
	Type string
}

// DataTypeDef describes an HL7 data type. Primitive types carry no
// component list.
type DataTypeDef struct {
	Name       string
	Primitive  bool
	Components []ComponentDef
}

// DataType looks up a data type by its code.
func DataType(code string) (DataTypeDef, bool) {
	dt, ok := dataTypes[code]
	return dt, ok
}

var dataTypes = map[string]DataTypeDef{
	"ST":  {Name: "String Data", Primitive: true},
	"NM":  {Name: "Numeric", Primitive: true},
	"ID":  {Name: "Coded Value for HL7 Tables", Primitive: true},
	"IS":  {Name: "Coded Value for User Tables", Primitive: true},
	"SI":  {Name: "Sequence ID", Primitive: true},
	"TX":  {Name: "Text Data", Primitive: true},
	"FT":  {Name: "Formatted Text", Primitive: true},
	"DT":  {Name: "Date", Primitive: true},
	"DTM": {Name: "Date/Time", Primitive: true},
	"TM":  {Name: "Time", Primitive: true},
	"GTS": {Name: "General Timing Specification", Primitive: true},
	"CQ": {Name: "Composite Quantity with Units", Components: []ComponentDef{
		{"Quantity", "NM"}, {"Units", "CE"}}},
	"HD": {Name: "Hierarchic Designator", Components: []ComponentDef{
		{"Namespace ID", "IS"}, {"Universal ID", "ST"}, {"Universal ID Type", "ID"}}},
	"EI": {Name: "Entity Identifier", Components: []ComponentDef{
		{"Entity Identifier", "ST"}, {"Namespace ID", "IS"},
		{"Universal ID", "ST"}, {"Universal ID Type", "ID"}}},
	"CE": {Name: "Coded Element", Components: []ComponentDef{
		{"Identifier", "ST"}, {"Text", "ST"}, {"Name of Coding System", "ID"},
		{"Alternate Identifier", "ST"}, {"Alternate Text", "ST"},
		{"Name of Alternate Coding System", "ID"}}},
	"CWE": {Name: "Coded with Exceptions", Components: []ComponentDef{
		{"Identifier", "ST"}, {"Text", "ST"}, {"Name of Coding System", "ID"},
		{"Alternate Identifier", "ST"}, {"Alternate Text", "ST"},
		{"Name of Alternate Coding System", "ID"}, {"Coding System Version ID", "ST"},
		{"Alternate Coding System Version ID", "ST"}, {"Original Text", "ST"}}},
	"CNE": {Name: "Coded with No Exceptions", Components: []ComponentDef{
		{"Identifier", "ST"}, {"Text", "ST"}, {"Name of Coding System", "ID"},
		{"Alternate Identifier", "ST"}, {"Alternate Text", "ST"},
		{"Name of Alternate Coding System", "ID"}, {"Coding System Version ID", "ST"},
		{"Alternate Coding System Version ID", "ST"}, {"Original Text", "ST"}}},
	"CX": {Name: "Extended Composite ID with Check Digit", Components: []ComponentDef{
		{"ID Number", "ST"}, {"Check Digit", "ST"}, {"Check Digit Scheme", "ID"},
		{"Assigning Authority", "HD"}, {"Identifier Type Code", "ID"},
		{"Assigning Facility", "HD"}, {"Effective Date", "DT"},
		{"Expiration Date", "DT"}, {"Assigning Jurisdiction", "CWE"},
		{"Assigning Agency", "CWE"}}},
	"XPN": {Name: "Extended Person Name", Components: []ComponentDef{
		{"Family Name", "FN"}, {"Given Name", "ST"}, {"Second Name", "ST"},
		{"Suffix", "ST"}, {"Prefix", "ST"}, {"Degree", "IS"},
		{"Name Type Code", "ID"}, {"Name Representation Code", "ID"},
		{"Name Context", "CE"}, {"Name Validity Range", "DR"},
		{"Name Assembly Order", "ID"}, {"Effective Date", "TS"},
		{"Expiration Date", "TS"}, {"Professional Suffix", "ST"}}},
	"XCN": {Name: "Extended Composite ID and Name", Components: []ComponentDef{
		{"Person Identifier", "ST"}, {"Family Name", "FN"}, {"Given Name", "ST"},
		{"Second Name", "ST"}, {"Suffix", "ST"}, {"Prefix", "ST"},
		{"Degree", "IS"}, {"Source Table", "IS"}, {"Assigning Authority", "HD"},
		{"Name Type Code", "ID"}, {"Identifier Check Digit", "ST"},
		{"Check Digit Scheme", "ID"}, {"Identifier Type Code", "ID"},
		{"Assigning Facility", "HD"}, {"Name Representation Code", "ID"},
		{"Name Context", "CE"}, {"Name Validity Range", "DR"},
		{"Name Assembly Order", "ID"}, {"Effective Date", "TS"},
		{"Expiration Date", "TS"}, {"Professional Suffix", "ST"},
		{"Assigning Jurisdiction", "CWE"}, {"Assigning Agency", "CWE"}}},
	"XAD": {Name: "Extended Address", Components: []ComponentDef{
		{"Street Address", "SAD"}, {"Other Designation", "ST"}, {"City", "ST"},
		{"State or Province", "ST"}, {"Zip or Postal Code", "ST"},
		{"Country", "ID"}, {"Address Type", "ID"},
		{"Other Geographic Designation", "ST"}, {"County/Parish Code", "IS"},
		{"Census Tract", "IS"}, {"Address Representation Code", "ID"},
		{"Address Validity Range", "DR"}, {"Effective Date", "TS"},
		{"Expiration Date", "TS"}}},
	"XTN": {Name: "Extended Telecommunication Number", Components: []ComponentDef{
		{"Telephone Number", "ST"}, {"Telecommunication Use Code", "ID"},
		{"Equipment Type", "ID"}, {"Email Address", "ST"}, {"Country Code", "NM"},
		{"Area/City Code", "NM"}, {"Local Number", "NM"}, {"Extension", "NM"},
		{"Any Text", "ST"}, {"Extension Prefix", "ST"}, {"Speed Dial Code", "ST"},
		{"Unformatted Number", "ST"}}},
	"PL": {Name: "Person Location", Components: []ComponentDef{
		{"Point of Care", "IS"}, {"Room", "IS"}, {"Bed", "IS"},
		{"Facility", "HD"}, {"Location Status", "IS"},
		{"Person Location Type", "IS"}, {"Building", "IS"}, {"Floor", "IS"},
		{"Location Description", "ST"}, {"Comprehensive Location ID", "EI"},
		{"Assigning Authority for Location", "HD"}}},
	"MSG": {Name: "Message Type", Components: []ComponentDef{
		{"Message Code", "ID"}, {"Trigger Event", "ID"}, {"Message Structure", "ID"}}},
	"PT": {Name: "Processing Type", Components: []ComponentDef{
		{"Processing ID", "ID"}, {"Processing Mode", "ID"}}},
	"VID": {Name: "Version Identifier", Components: []ComponentDef{
		{"Version ID", "ID"}, {"Internationalization Code", "CE"},
		{"International Version ID", "CE"}}},
	"TS": {Name: "Time Stamp", Components: []ComponentDef{
		{"Time", "DTM"}, {"Degree of Precision", "ID"}}},
	"FN": {Name: "Family Name", Components: []ComponentDef{
		{"Surname", "ST"}, {"Own Surname Prefix", "ST"}, {"Own Surname", "ST"},
		{"Surname Prefix from Partner", "ST"}, {"Surname from Partner", "ST"}}},
	"SAD": {Name: "Street Address", Components: []ComponentDef{
		{"Street or Mailing Address", "ST"}, {"Street Name", "ST"},
		{"Dwelling Number", "ST"}}},
	"RP": {Name: "Reference Pointer", Components: []ComponentDef{
		{"Pointer", "ST"}, {"Application ID", "HD"}, {"Type of Data", "ID"},
		{"Subtype", "ID"}}},
	"DR": {Name: "Date/Time Range", Components: []ComponentDef{
		{"Range Start Date/Time", "TS"}, {"Range End Date/Time", "TS"}}},
	"DLN": {Name: "Driver's License Number", Components: []ComponentDef{
		{"License Number", "ST"}, {"Issuing State", "IS"}, {"Expiration Date", "DT"}}},
	"FC": {Name: "Financial Class", Components: []ComponentDef{
		{"Financial Class Code", "IS"}, {"Effective Date", "TS"}}},
	"DLD": {Name: "Discharge to Location", Components: []ComponentDef{
		{"Discharge Location", "IS"}, {"Effective Date", "TS"}}},
	"CP": {Name: "Composite Price", Components: []ComponentDef{
		{"Price", "MO"}, {"Price Type", "ID"}, {"From Value", "NM"},
		{"To Value", "NM"}, {"Range Units", "CE"}, {"Range Type", "ID"}}},
	"MO": {Name: "Money", Components: []ComponentDef{
		{"Quantity", "NM"}, {"Denomination", "ID"}}},
	"SN": {Name: "Structured Numeric", Components: []ComponentDef{
		{"Comparator", "ST"}, {"Num1", "NM"}, {"Separator/Suffix", "ST"},
		{"Num2", "NM"}}},
	"ED": {Name: "Encapsulated Data", Components: []ComponentDef{
		{"Source Application", "HD"}, {"Type of Data", "ID"},
		{"Data Subtype", "ID"}, {"Encoding", "ID"}, {"Data", "TX"}}},
	"CF": {Name: "Coded Element with Formatted Values", Components: []ComponentDef{
		{"Identifier", "ST"}, {"Formatted Text", "FT"},
		{"Name of Coding System", "ID"}, {"Alternate Identifier", "ST"},
		{"Alternate Formatted Text", "FT"},
		{"Name of Alternate Coding System", "ID"}}},
	"TQ": {Name: "Timing/Quantity", Components: []ComponentDef{
		{"Quantity", "CQ"}, {"Interval", "RI"}, {"Duration", "ST"},
		{"Start Date/Time", "TS"}, {"End Date/Time", "TS"}, {"Priority", "ST"},
		{"Condition", "ST"}, {"Text", "TX"}, {"Conjunction", "ID"},
		{"Order Sequencing", "OSD"}, {"Occurrence Duration", "CE"},
		{"Total Occurrences", "NM"}}},
	"RI": {Name: "Repeat Interval", Components: []ComponentDef{
		{"Repeat Pattern", "IS"}, {"Explicit Time Interval", "ST"}}},
	"XON": {Name: "Extended Composite Name for Organizations", Components: []ComponentDef{
		{"Organization Name", "ST"}, {"Organization Name Type Code", "IS"},
		{"ID Number", "NM"}, {"Check Digit", "NM"}, {"Check Digit Scheme", "ID"},
		{"Assigning Authority", "HD"}, {"Identifier Type Code", "ID"},
		{"Assigning Facility", "HD"}, {"Name Representation Code", "ID"},
		{"Organization Identifier", "ST"}}},
	"RPT": {Name: "Repeat Pattern", Components: []ComponentDef{
		{"Repeat Pattern Code", "CWE"}, {"Calendar Alignment", "ID"},
		{"Phase Range Begin Value", "NM"}, {"Phase Range End Value", "NM"},
		{"Period Quantity", "NM"}, {"Period Units", "IS"},
		{"Institution Specified Time", "ID"}, {"Event", "ID"},
		{"Event Offset Quantity", "NM"}, {"Event Offset Units", "IS"},
		{"General Timing Specification", "GTS"}}},
}
