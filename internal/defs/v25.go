package defs

// applyV25 layers the 2.5 overlay onto a copy of the 2.3 table: new
// trailing fields on existing segments, a full redefinition of ERR and
// four segments introduced by the 2.5 standard.
func applyV25(t Table) Table {
	msh := t["MSH"].Fields
	msh[20] = f("Alternate Character Set Handling", "ID", "O", false, 20)
	msh[21] = f("Message Profile Identifier", "EI", "O", true, 427)

	pid := t["PID"].Fields
	pid[31] = f("Identity Unknown Indicator", "ID", "O", false, 1)
	pid[32] = f("Identity Reliability Code", "IS", "O", true, 20)
	pid[33] = f("Last Update Date/Time", "TS", "O", false, 26)
	pid[34] = f("Last Update Facility", "HD", "O", false, 241)
	pid[35] = f("Species Code", "CE", "C", false, 250)
	pid[36] = f("Breed Code", "CE", "C", false, 250)
	pid[37] = f("Strain", "ST", "O", false, 80)
	pid[38] = f("Production Class Code", "CE", "O", false, 250)
	pid[39] = f("Tribal Citizenship", "CWE", "O", true, 250)

	// ERR was restructured wholesale between 2.3 and 2.5.
	t["ERR"] = SegmentDef{Name: "Error", Fields: map[int]FieldDef{
		1:  f("Error Code and Location", "ELD", "B", true, 493),
		2:  f("Error Location", "ERL", "O", true, 18),
		3:  f("HL7 Error Code", "CWE", "R", false, 705),
		4:  f("Severity", "ID", "R", false, 2),
		5:  f("Application Error Code", "CWE", "O", false, 705),
		6:  f("Application Error Parameter", "ST", "O", true, 80),
		7:  f("Diagnostic Information", "TX", "O", false, 2048),
		8:  f("User Message", "TX", "O", false, 250),
		9:  f("Inform Person Indicator", "IS", "O", true, 20),
		10: f("Override Type", "CWE", "O", false, 705),
		11: f("Override Reason Code", "CWE", "O", true, 705),
		12: f("Help Desk Contact Point", "XTN", "O", true, 652),
	}}

	orc := t["ORC"].Fields
	orc[20] = f("Advanced Beneficiary Notice Code", "CE", "O", false, 250)
	orc[21] = f("Ordering Facility Name", "XON", "O", true, 250)
	orc[22] = f("Ordering Facility Address", "XAD", "O", true, 250)
	orc[23] = f("Ordering Facility Phone Number", "XTN", "O", true, 250)
	orc[24] = f("Ordering Provider Address", "XAD", "O", true, 250)
	orc[25] = f("Order Status Modifier", "CWE", "O", false, 250)

	obr := t["OBR"].Fields
	obr[44] = f("Procedure Code", "CE", "O", false, 250)
	obr[45] = f("Procedure Code Modifier", "CE", "O", true, 250)
	obr[46] = f("Placer Supplemental Service Info", "CE", "O", true, 250)
	obr[47] = f("Filler Supplemental Service Info", "CE", "O", true, 250)
	obr[48] = f("Medically Necessary Duplicate Procedure Reason", "CWE", "C", false, 250)
	obr[49] = f("Result Handling", "IS", "O", false, 2)
	obr[50] = f("Parent Universal Service Identifier", "CWE", "O", false, 250)

	obx := t["OBX"].Fields
	obx[18] = f("Equipment Instance Identifier", "EI", "O", true, 22)
	obx[19] = f("Date/Time of the Analysis", "TS", "O", false, 26)

	t["SFT"] = SegmentDef{Name: "Software Segment", Fields: map[int]FieldDef{
		1: f("Software Vendor Organization", "XON", "R", false, 567),
		2: f("Software Certified Version or Release Number", "ST", "R", false, 15),
		3: f("Software Product Name", "ST", "R", false, 20),
		4: f("Software Binary ID", "ST", "R", false, 20),
		5: f("Software Product Information", "TX", "O", false, 1024),
		6: f("Software Install Date", "TS", "O", false, 26),
	}}

	t["SPM"] = SegmentDef{Name: "Specimen", Fields: map[int]FieldDef{
		1:  f("Set ID", "SI", "O", false, 4),
		2:  f("Specimen ID", "EIP", "O", false, 80),
		3:  f("Specimen Parent IDs", "EIP", "O", true, 80),
		4:  f("Specimen Type", "CWE", "R", false, 250),
		5:  f("Specimen Type Modifier", "CWE", "O", true, 250),
		6:  f("Specimen Additives", "CWE", "O", true, 250),
		7:  f("Specimen Collection Method", "CWE", "O", false, 250),
		8:  f("Specimen Source Site", "CWE", "O", false, 250),
		9:  f("Specimen Source Site Modifier", "CWE", "O", true, 250),
		10: f("Specimen Collection Site", "CWE", "O", false, 250),
		11: f("Specimen Role", "CWE", "O", true, 250),
		12: f("Specimen Collection Amount", "CQ", "O", false, 20),
		13: f("Grouped Specimen Count", "NM", "O", false, 6),
		14: f("Specimen Description", "ST", "O", true, 250),
		15: f("Specimen Handling Code", "CWE", "O", true, 250),
		16: f("Specimen Risk Code", "CWE", "O", true, 250),
		17: f("Specimen Collection Date/Time", "DR", "O", false, 26),
		18: f("Specimen Received Date/Time", "TS", "O", false, 26),
		19: f("Specimen Expiration Date/Time", "TS", "O", false, 26),
		20: f("Specimen Availability", "ID", "O", false, 1),
		21: f("Specimen Reject Reason", "CWE", "O", true, 250),
		22: f("Specimen Quality", "CWE", "O", false, 250),
		23: f("Specimen Appropriateness", "CWE", "O", false, 250),
		24: f("Specimen Condition", "CWE", "O", true, 250),
		25: f("Specimen Current Quantity", "CQ", "O", false, 20),
		26: f("Number of Specimen Containers", "NM", "O", false, 4),
		27: f("Container Type", "CWE", "O", false, 250),
	}}

	t["TQ1"] = SegmentDef{Name: "Timing/Quantity", Fields: map[int]FieldDef{
		1:  f("Set ID", "SI", "O", false, 4),
		2:  f("Quantity", "CQ", "O", false, 20),
		3:  f("Repeat Pattern", "RPT", "O", true, 540),
		4:  f("Explicit Time", "TM", "O", true, 20),
		5:  f("Relative Time and Units", "CQ", "O", true, 20),
		6:  f("Service Duration", "CQ", "O", false, 20),
		7:  f("Start Date/Time", "TS", "R", false, 26),
		8:  f("End Date/Time", "TS", "O", false, 26),
		9:  f("Priority", "CWE", "O", true, 250),
		10: f("Condition Text", "TX", "O", false, 250),
		11: f("Text Instruction", "TX", "O", false, 250),
		12: f("Conjunction", "ID", "C", false, 10),
		13: f("Occurrence Duration", "CQ", "O", false, 20),
		14: f("Total Occurrences", "NM", "O", false, 10),
	}}

	t["TQ2"] = SegmentDef{Name: "Timing/Quantity Relationship", Fields: map[int]FieldDef{
		1:  f("Set ID", "SI", "O", false, 4),
		2:  f("Sequence/Results Flag", "ID", "O", false, 1),
		3:  f("Related Placer Number", "EI", "O", true, 22),
		4:  f("Related Filler Number", "EI", "O", true, 22),
		5:  f("Related Placer Group Number", "EI", "O", true, 22),
		6:  f("Sequence Condition Code", "ID", "O", false, 2),
		7:  f("Cyclic Entry/Exit Indicator", "ID", "O", false, 1),
		8:  f("Sequence Condition Time Interval", "CQ", "O", false, 20),
		9:  f("Cyclic Group Maximum Number of Repeats", "NM", "O", false, 10),
		10: f("Special Service Request Relationship", "ID", "O", false, 1),
	}}

	return t
}
