package defs

// f is shorthand for a field definition literal.
func f(name, dt, opt string, rep bool, maxLen int) FieldDef {
	return FieldDef{Name: name, Type: dt, Optionality: opt, Repeats: rep, MaxLen: maxLen}
}

// buildV23 returns the base generation every later table layers on.
func buildV23() Table {
	return Table{
		"MSH": {Name: "Message Header", Fields: map[int]FieldDef{
			1:  f("Field Separator", "ST", "R", false, 1),
			2:  f("Encoding Characters", "ST", "R", false, 4),
			3:  f("Sending Application", "HD", "O", false, 180),
			4:  f("Sending Facility", "HD", "O", false, 180),
			5:  f("Receiving Application", "HD", "O", false, 180),
			6:  f("Receiving Facility", "HD", "O", false, 180),
			7:  f("Date/Time of Message", "TS", "O", false, 26),
			8:  f("Security", "ST", "O", false, 40),
			9:  f("Message Type", "MSG", "R", false, 15),
			10: f("Message Control ID", "ST", "R", false, 20),
			11: f("Processing ID", "PT", "R", false, 3),
			12: f("Version ID", "VID", "R", false, 60),
			13: f("Sequence Number", "NM", "O", false, 15),
			14: f("Continuation Pointer", "ST", "O", false, 180),
			15: f("Accept Acknowledgment Type", "ID", "O", false, 2),
			16: f("Application Acknowledgment Type", "ID", "O", false, 2),
			17: f("Country Code", "ID", "O", false, 3),
			18: f("Character Set", "ID", "O", true, 16),
			19: f("Principal Language of Message", "CE", "O", false, 250),
		}},
		"EVN": {Name: "Event Type", Fields: map[int]FieldDef{
			1: f("Event Type Code", "ID", "B", false, 3),
			2: f("Recorded Date/Time", "TS", "R", false, 26),
			3: f("Date/Time Planned Event", "TS", "O", false, 26),
			4: f("Event Reason Code", "IS", "O", false, 3),
			5: f("Operator ID", "XCN", "O", true, 250),
			6: f("Event Occurred", "TS", "O", false, 26),
		}},
		"PID": {Name: "Patient Identification", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "O", false, 4),
			2:  f("Patient ID", "CX", "B", false, 20),
			3:  f("Patient Identifier List", "CX", "R", true, 250),
			4:  f("Alternate Patient ID", "CX", "B", true, 20),
			5:  f("Patient Name", "XPN", "R", true, 250),
			6:  f("Mother's Maiden Name", "XPN", "O", true, 250),
			7:  f("Date/Time of Birth", "TS", "O", false, 26),
			8:  f("Administrative Sex", "IS", "O", false, 1),
			9:  f("Patient Alias", "XPN", "B", true, 250),
			10: f("Race", "CE", "O", true, 250),
			11: f("Patient Address", "XAD", "O", true, 250),
			12: f("County Code", "IS", "B", false, 4),
			13: f("Phone Number - Home", "XTN", "O", true, 250),
			14: f("Phone Number - Business", "XTN", "O", true, 250),
			15: f("Primary Language", "CE", "O", false, 250),
			16: f("Marital Status", "CE", "O", false, 250),
			17: f("Religion", "CE", "O", false, 250),
			18: f("Patient Account Number", "CX", "O", false, 250),
			19: f("SSN Number", "ST", "B", false, 16),
			20: f("Driver's License Number", "DLN", "B", false, 25),
			21: f("Mother's Identifier", "CX", "O", true, 250),
			22: f("Ethnic Group", "CE", "O", true, 250),
			23: f("Birth Place", "ST", "O", false, 250),
			24: f("Multiple Birth Indicator", "ID", "O", false, 1),
			25: f("Birth Order", "NM", "O", false, 2),
			26: f("Citizenship", "CE", "O", true, 250),
			27: f("Veterans Military Status", "CE", "O", false, 250),
			28: f("Nationality", "CE", "B", false, 250),
			29: f("Patient Death Date/Time", "TS", "O", false, 26),
			30: f("Patient Death Indicator", "ID", "O", false, 1),
		}},
		"PV1": {Name: "Patient Visit", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "O", false, 4),
			2:  f("Patient Class", "IS", "R", false, 1),
			3:  f("Assigned Patient Location", "PL", "O", false, 80),
			4:  f("Admission Type", "IS", "O", false, 2),
			5:  f("Preadmit Number", "CX", "O", false, 250),
			6:  f("Prior Patient Location", "PL", "O", false, 80),
			7:  f("Attending Doctor", "XCN", "O", true, 250),
			8:  f("Referring Doctor", "XCN", "O", true, 250),
			9:  f("Consulting Doctor", "XCN", "O", true, 250),
			10: f("Hospital Service", "IS", "O", false, 3),
			11: f("Temporary Location", "PL", "O", false, 80),
			12: f("Preadmit Test Indicator", "IS", "O", false, 2),
			13: f("Re-admission Indicator", "IS", "O", false, 2),
			14: f("Admit Source", "IS", "O", false, 6),
			15: f("Ambulatory Status", "IS", "O", true, 2),
			16: f("VIP Indicator", "IS", "O", false, 2),
			17: f("Admitting Doctor", "XCN", "O", true, 250),
			18: f("Patient Type", "IS", "O", false, 2),
			19: f("Visit Number", "CX", "O", false, 250),
			20: f("Financial Class", "FC", "O", true, 50),
			21: f("Charge Price Indicator", "IS", "O", false, 2),
			22: f("Courtesy Code", "IS", "O", false, 2),
			23: f("Credit Rating", "IS", "O", false, 2),
			24: f("Contract Code", "IS", "O", true, 2),
			25: f("Contract Effective Date", "DT", "O", true, 8),
			26: f("Contract Amount", "NM", "O", true, 12),
			27: f("Contract Period", "NM", "O", true, 3),
			28: f("Interest Code", "IS", "O", false, 2),
			29: f("Transfer to Bad Debt Code", "IS", "O", false, 1),
			30: f("Transfer to Bad Debt Date", "DT", "O", false, 8),
			31: f("Bad Debt Agency Code", "IS", "O", false, 10),
			32: f("Bad Debt Transfer Amount", "NM", "O", false, 12),
			33: f("Bad Debt Recovery Amount", "NM", "O", false, 12),
			34: f("Delete Account Indicator", "IS", "O", false, 1),
			35: f("Delete Account Date", "DT", "O", false, 8),
			36: f("Discharge Disposition", "IS", "O", false, 3),
			37: f("Discharged to Location", "DLD", "O", false, 25),
			38: f("Diet Type", "CE", "O", false, 250),
			39: f("Servicing Facility", "IS", "O", false, 2),
			40: f("Bed Status", "IS", "B", false, 1),
			41: f("Account Status", "IS", "O", false, 2),
			42: f("Pending Location", "PL", "O", false, 80),
			43: f("Prior Temporary Location", "PL", "O", false, 80),
			44: f("Admit Date/Time", "TS", "O", false, 26),
			45: f("Discharge Date/Time", "TS", "O", true, 26),
			46: f("Current Patient Balance", "NM", "O", false, 12),
			47: f("Total Charges", "NM", "O", false, 12),
			48: f("Total Adjustments", "NM", "O", false, 12),
			49: f("Total Payments", "NM", "O", false, 12),
			50: f("Alternate Visit ID", "CX", "O", false, 250),
			51: f("Visit Indicator", "IS", "O", false, 1),
			52: f("Other Healthcare Provider", "XCN", "B", true, 250),
		}},
		"PV2": {Name: "Patient Visit - Additional", Fields: map[int]FieldDef{
			1:  f("Prior Pending Location", "PL", "C", false, 80),
			2:  f("Accommodation Code", "CE", "O", false, 250),
			3:  f("Admit Reason", "CE", "O", false, 250),
			4:  f("Transfer Reason", "CE", "O", false, 250),
			5:  f("Patient Valuables", "ST", "O", true, 25),
			6:  f("Patient Valuables Location", "ST", "O", false, 25),
			7:  f("Visit User Code", "IS", "O", true, 2),
			8:  f("Expected Admit Date/Time", "TS", "O", false, 26),
			9:  f("Expected Discharge Date/Time", "TS", "O", false, 26),
			10: f("Estimated Length of Inpatient Stay", "NM", "O", false, 3),
			11: f("Actual Length of Inpatient Stay", "NM", "O", false, 3),
			12: f("Visit Description", "ST", "O", false, 50),
			13: f("Referral Source Code", "XCN", "O", true, 250),
			14: f("Previous Service Date", "DT", "O", false, 8),
			15: f("Employment Illness Related Indicator", "ID", "O", false, 1),
			16: f("Purge Status Code", "IS", "O", false, 1),
			17: f("Purge Status Date", "DT", "O", false, 8),
			18: f("Special Program Code", "IS", "O", false, 2),
			19: f("Retention Indicator", "ID", "O", false, 1),
			20: f("Expected Number of Insurance Plans", "NM", "O", false, 1),
			21: f("Visit Publicity Code", "IS", "O", false, 1),
			22: f("Visit Protection Indicator", "ID", "O", false, 1),
			23: f("Clinic Organization Name", "XON", "O", true, 250),
			24: f("Patient Status Code", "IS", "O", false, 2),
			25: f("Visit Priority Code", "IS", "O", false, 1),
			26: f("Previous Treatment Date", "DT", "O", false, 8),
			27: f("Expected Discharge Disposition", "IS", "O", false, 2),
			28: f("Signature on File Date", "DT", "O", false, 8),
			29: f("First Similar Illness Date", "DT", "O", false, 8),
			30: f("Patient Charge Adjustment Code", "CE", "O", false, 250),
		}},
		"NK1": {Name: "Next of Kin", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "R", false, 4),
			2:  f("Name", "XPN", "O", true, 250),
			3:  f("Relationship", "CE", "O", false, 250),
			4:  f("Address", "XAD", "O", true, 250),
			5:  f("Phone Number", "XTN", "O", true, 250),
			6:  f("Business Phone Number", "XTN", "O", true, 250),
			7:  f("Contact Role", "CE", "O", false, 250),
			8:  f("Start Date", "DT", "O", false, 8),
			9:  f("End Date", "DT", "O", false, 8),
			10: f("Next of Kin Job Title", "ST", "O", false, 60),
			11: f("Next of Kin Job Code/Class", "JCC", "O", false, 20),
			12: f("Next of Kin Employee Number", "CX", "O", false, 250),
			13: f("Organization Name", "XON", "O", true, 250),
		}},
		"ORC": {Name: "Common Order", Fields: map[int]FieldDef{
			1:  f("Order Control", "ID", "R", false, 2),
			2:  f("Placer Order Number", "EI", "C", false, 22),
			3:  f("Filler Order Number", "EI", "C", false, 22),
			4:  f("Placer Group Number", "EI", "O", false, 22),
			5:  f("Order Status", "ID", "O", false, 2),
			6:  f("Response Flag", "ID", "O", false, 1),
			7:  f("Quantity/Timing", "TQ", "O", true, 200),
			8:  f("Parent", "EI", "O", false, 200),
			9:  f("Date/Time of Transaction", "TS", "O", false, 26),
			10: f("Entered By", "XCN", "O", true, 250),
			11: f("Verified By", "XCN", "O", true, 250),
			12: f("Ordering Provider", "XCN", "O", true, 250),
			13: f("Enterer's Location", "PL", "O", false, 80),
			14: f("Call Back Phone Number", "XTN", "O", true, 250),
			15: f("Order Effective Date/Time", "TS", "O", false, 26),
			16: f("Order Control Code Reason", "CE", "O", false, 250),
			17: f("Entering Organization", "CE", "O", false, 250),
			18: f("Entering Device", "CE", "O", false, 250),
			19: f("Action By", "XCN", "O", true, 250),
		}},
		"OBR": {Name: "Observation Request", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "O", false, 4),
			2:  f("Placer Order Number", "EI", "C", false, 22),
			3:  f("Filler Order Number", "EI", "C", false, 22),
			4:  f("Universal Service Identifier", "CE", "R", false, 250),
			5:  f("Priority", "ID", "B", false, 2),
			6:  f("Requested Date/Time", "TS", "B", false, 26),
			7:  f("Observation Date/Time", "TS", "C", false, 26),
			8:  f("Observation End Date/Time", "TS", "O", false, 26),
			9:  f("Collection Volume", "CQ", "O", false, 20),
			10: f("Collector Identifier", "XCN", "O", true, 250),
			11: f("Specimen Action Code", "ID", "O", false, 1),
			12: f("Danger Code", "CE", "O", false, 250),
			13: f("Relevant Clinical Information", "ST", "O", false, 300),
			14: f("Specimen Received Date/Time", "TS", "O", false, 26),
			15: f("Specimen Source", "SPS", "O", false, 300),
			16: f("Ordering Provider", "XCN", "O", true, 250),
			17: f("Order Callback Phone Number", "XTN", "O", true, 250),
			18: f("Placer Field 1", "ST", "O", false, 60),
			19: f("Placer Field 2", "ST", "O", false, 60),
			20: f("Filler Field 1", "ST", "O", false, 60),
			21: f("Filler Field 2", "ST", "O", false, 60),
			22: f("Results Rpt/Status Chng Date/Time", "TS", "C", false, 26),
			23: f("Charge to Practice", "MOC", "O", false, 40),
			24: f("Diagnostic Service Section ID", "ID", "O", false, 10),
			25: f("Result Status", "ID", "C", false, 1),
			26: f("Parent Result", "PRL", "O", false, 400),
			27: f("Quantity/Timing", "TQ", "O", true, 200),
			28: f("Result Copies To", "XCN", "O", true, 250),
			29: f("Parent Number", "EI", "O", false, 200),
			30: f("Transportation Mode", "ID", "O", false, 20),
			31: f("Reason for Study", "CE", "O", true, 250),
			32: f("Principal Result Interpreter", "NDL", "O", false, 200),
			33: f("Assistant Result Interpreter", "NDL", "O", true, 200),
			34: f("Technician", "NDL", "O", true, 200),
			35: f("Transcriptionist", "NDL", "O", true, 200),
			36: f("Scheduled Date/Time", "TS", "O", false, 26),
			37: f("Number of Sample Containers", "NM", "O", false, 4),
			38: f("Transport Logistics of Collected Sample", "CE", "O", true, 250),
			39: f("Collector's Comment", "CE", "O", true, 250),
			40: f("Transport Arrangement Responsibility", "CE", "O", false, 250),
			41: f("Transport Arranged", "ID", "O", false, 30),
			42: f("Escort Required", "ID", "O", false, 1),
			43: f("Planned Patient Transport Comment", "CE", "O", true, 250),
		}},
		"OBX": {Name: "Observation/Result", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "O", false, 4),
			2:  f("Value Type", "ID", "C", false, 3),
			3:  f("Observation Identifier", "CE", "R", false, 250),
			4:  f("Observation Sub-ID", "ST", "C", false, 20),
			5:  f("Observation Value", "*", "C", true, 65536),
			6:  f("Units", "CE", "O", false, 250),
			7:  f("References Range", "ST", "O", false, 60),
			8:  f("Abnormal Flags", "IS", "O", true, 5),
			9:  f("Probability", "NM", "O", false, 5),
			10: f("Nature of Abnormal Test", "ID", "O", false, 2),
			11: f("Observation Result Status", "ID", "R", false, 1),
			12: f("Effective Date of Reference Range", "TS", "O", false, 26),
			13: f("User Defined Access Checks", "ST", "O", false, 20),
			14: f("Date/Time of Observation", "TS", "O", false, 26),
			15: f("Producer's ID", "CE", "O", false, 250),
			16: f("Responsible Observer", "XCN", "O", true, 250),
			17: f("Observation Method", "CE", "O", true, 250),
		}},
		"DG1": {Name: "Diagnosis", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "R", false, 4),
			2:  f("Diagnosis Coding Method", "ID", "B", false, 2),
			3:  f("Diagnosis Code", "CE", "O", false, 250),
			4:  f("Diagnosis Description", "ST", "B", false, 40),
			5:  f("Diagnosis Date/Time", "TS", "O", false, 26),
			6:  f("Diagnosis Type", "IS", "R", false, 2),
			7:  f("Major Diagnostic Category", "CE", "B", false, 250),
			8:  f("Diagnostic Related Group", "CE", "B", false, 250),
			9:  f("DRG Approval Indicator", "ID", "B", false, 1),
			10: f("DRG Grouper Review Code", "IS", "B", false, 2),
			11: f("Outlier Type", "CE", "B", false, 250),
			12: f("Outlier Days", "NM", "B", false, 3),
			13: f("Outlier Cost", "CP", "B", false, 12),
			14: f("Grouper Version and Type", "ST", "B", false, 4),
			15: f("Diagnosis Priority", "ID", "O", false, 2),
			16: f("Diagnosing Clinician", "XCN", "O", true, 250),
		}},
		"IN1": {Name: "Insurance", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "R", false, 4),
			2:  f("Insurance Plan ID", "CE", "R", false, 250),
			3:  f("Insurance Company ID", "CX", "R", true, 250),
			4:  f("Insurance Company Name", "XON", "O", true, 250),
			5:  f("Insurance Company Address", "XAD", "O", true, 250),
			6:  f("Insurance Co Contact Person", "XPN", "O", true, 250),
			7:  f("Insurance Co Phone Number", "XTN", "O", true, 250),
			8:  f("Group Number", "ST", "O", false, 12),
			9:  f("Group Name", "XON", "O", true, 250),
			10: f("Insured's Group Emp ID", "CX", "O", true, 250),
			11: f("Insured's Group Emp Name", "XON", "O", true, 250),
			12: f("Plan Effective Date", "DT", "O", false, 8),
			13: f("Plan Expiration Date", "DT", "O", false, 8),
			14: f("Authorization Information", "AUI", "O", false, 239),
			15: f("Plan Type", "IS", "O", false, 3),
			16: f("Name of Insured", "XPN", "O", true, 250),
			17: f("Insured's Relationship to Patient", "CE", "O", false, 250),
			18: f("Insured's Date of Birth", "TS", "O", false, 26),
			19: f("Insured's Address", "XAD", "O", true, 250),
			20: f("Assignment of Benefits", "IS", "O", false, 2),
			21: f("Coordination of Benefits", "IS", "O", false, 2),
			22: f("Coord of Ben. Priority", "ST", "O", false, 2),
		}},
		"AL1": {Name: "Patient Allergy", Fields: map[int]FieldDef{
			1: f("Set ID", "SI", "R", false, 4),
			2: f("Allergen Type Code", "CE", "O", false, 250),
			3: f("Allergen Code/Description", "CE", "R", false, 250),
			4: f("Allergy Severity Code", "CE", "O", false, 250),
			5: f("Allergy Reaction Code", "ST", "O", true, 15),
			6: f("Identification Date", "DT", "B", false, 8),
		}},
		"GT1": {Name: "Guarantor", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "R", false, 4),
			2:  f("Guarantor Number", "CX", "O", true, 250),
			3:  f("Guarantor Name", "XPN", "R", true, 250),
			4:  f("Guarantor Spouse Name", "XPN", "O", true, 250),
			5:  f("Guarantor Address", "XAD", "O", true, 250),
			6:  f("Guarantor Ph Num - Home", "XTN", "O", true, 250),
			7:  f("Guarantor Ph Num - Business", "XTN", "O", true, 250),
			8:  f("Guarantor Date/Time of Birth", "TS", "O", false, 26),
			9:  f("Guarantor Administrative Sex", "IS", "O", false, 1),
			10: f("Guarantor Type", "IS", "O", false, 2),
			11: f("Guarantor Relationship", "CE", "O", false, 250),
			12: f("Guarantor SSN", "ST", "O", false, 11),
		}},
		"NTE": {Name: "Notes and Comments", Fields: map[int]FieldDef{
			1: f("Set ID", "SI", "O", false, 4),
			2: f("Source of Comment", "ID", "O", false, 8),
			3: f("Comment", "FT", "O", true, 65536),
			4: f("Comment Type", "CE", "O", false, 250),
		}},
		"MSA": {Name: "Message Acknowledgment", Fields: map[int]FieldDef{
			1: f("Acknowledgment Code", "ID", "R", false, 2),
			2: f("Message Control ID", "ST", "R", false, 20),
			3: f("Text Message", "ST", "O", false, 80),
			4: f("Expected Sequence Number", "NM", "O", false, 15),
			5: f("Delayed Acknowledgment Type", "ID", "B", false, 1),
			6: f("Error Condition", "CE", "O", false, 250),
		}},
		"ERR": {Name: "Error", Fields: map[int]FieldDef{
			1: f("Error Code and Location", "CM", "R", true, 80),
		}},
		"QRD": {Name: "Original-Style Query Definition", Fields: map[int]FieldDef{
			1:  f("Query Date/Time", "TS", "R", false, 26),
			2:  f("Query Format Code", "ID", "R", false, 1),
			3:  f("Query Priority", "ID", "R", false, 1),
			4:  f("Query ID", "ST", "R", false, 10),
			5:  f("Deferred Response Type", "ID", "O", false, 1),
			6:  f("Deferred Response Date/Time", "TS", "O", false, 26),
			7:  f("Quantity Limited Request", "CQ", "R", false, 10),
			8:  f("Who Subject Filter", "XCN", "R", true, 250),
			9:  f("What Subject Filter", "CE", "R", true, 250),
			10: f("What Department Data Code", "CE", "R", true, 250),
			11: f("What Data Code Value Qual", "CM", "O", true, 20),
			12: f("Query Results Level", "ID", "O", false, 1),
		}},
		"QRF": {Name: "Original-Style Query Filter", Fields: map[int]FieldDef{
			1: f("Where Subject Filter", "ST", "R", true, 20),
			2: f("When Data Start Date/Time", "TS", "O", false, 26),
			3: f("When Data End Date/Time", "TS", "O", false, 26),
			4: f("What User Qualifier", "ST", "O", true, 60),
			5: f("Other QRY Subject Filter", "ST", "O", true, 60),
		}},
		"MRG": {Name: "Merge Patient Information", Fields: map[int]FieldDef{
			1: f("Prior Patient Identifier List", "CX", "R", true, 250),
			2: f("Prior Alternate Patient ID", "CX", "B", true, 250),
			3: f("Prior Patient Account Number", "CX", "O", false, 250),
			4: f("Prior Patient ID", "CX", "B", false, 250),
			5: f("Prior Visit Number", "CX", "O", false, 250),
			6: f("Prior Alternate Visit ID", "CX", "O", false, 250),
			7: f("Prior Patient Name", "XPN", "O", true, 250),
		}},
		"SCH": {Name: "Scheduling Activity", Fields: map[int]FieldDef{
			1:  f("Placer Appointment ID", "EI", "C", false, 75),
			2:  f("Filler Appointment ID", "EI", "C", false, 75),
			3:  f("Occurrence Number", "NM", "C", false, 5),
			4:  f("Placer Group Number", "EI", "O", false, 22),
			5:  f("Schedule ID", "CE", "O", false, 250),
			6:  f("Event Reason", "CE", "R", false, 250),
			7:  f("Appointment Reason", "CE", "O", false, 250),
			8:  f("Appointment Type", "CE", "O", false, 250),
			9:  f("Appointment Duration", "NM", "O", false, 20),
			10: f("Appointment Duration Units", "CE", "O", false, 250),
			11: f("Appointment Timing Quantity", "TQ", "O", true, 200),
			12: f("Placer Contact Person", "XCN", "O", true, 250),
			13: f("Placer Contact Phone Number", "XTN", "O", false, 250),
			14: f("Placer Contact Address", "XAD", "O", true, 250),
			15: f("Placer Contact Location", "PL", "O", false, 80),
			16: f("Filler Contact Person", "XCN", "R", true, 250),
			17: f("Filler Contact Phone Number", "XTN", "O", false, 250),
			18: f("Filler Contact Address", "XAD", "O", true, 250),
			19: f("Filler Contact Location", "PL", "O", false, 80),
			20: f("Entered By Person", "XCN", "R", true, 250),
			21: f("Entered By Phone Number", "XTN", "O", true, 250),
			22: f("Entered By Location", "PL", "O", false, 80),
			23: f("Parent Placer Appointment ID", "EI", "O", false, 75),
			24: f("Parent Filler Appointment ID", "EI", "O", false, 75),
			25: f("Filler Status Code", "CE", "O", false, 250),
		}},
		"TXA": {Name: "Transcription Document Header", Fields: map[int]FieldDef{
			1:  f("Set ID", "SI", "R", false, 4),
			2:  f("Document Type", "IS", "R", false, 30),
			3:  f("Document Content Presentation", "ID", "C", false, 2),
			4:  f("Activity Date/Time", "TS", "O", false, 26),
			5:  f("Primary Activity Provider Code/Name", "XCN", "C", true, 250),
			6:  f("Origination Date/Time", "TS", "O", false, 26),
			7:  f("Transcription Date/Time", "TS", "O", false, 26),
			8:  f("Edit Date/Time", "TS", "O", true, 26),
			9:  f("Originator Code/Name", "XCN", "O", true, 250),
			10: f("Assigned Document Authenticator", "XCN", "O", true, 250),
			11: f("Transcriptionist Code/Name", "XCN", "O", true, 250),
			12: f("Unique Document Number", "EI", "R", false, 30),
			13: f("Parent Document Number", "EI", "O", false, 30),
			14: f("Placer Order Number", "EI", "O", true, 22),
			15: f("Filler Order Number", "EI", "O", false, 22),
			16: f("Unique Document File Name", "ST", "O", false, 30),
			17: f("Document Completion Status", "ID", "R", false, 2),
			18: f("Document Confidentiality Status", "ID", "O", false, 2),
			19: f("Document Availability Status", "ID", "O", false, 2),
			20: f("Document Storage Status", "ID", "O", false, 2),
			21: f("Document Change Reason", "ST", "C", false, 30),
			22: f("Authentication Person Time Stamp", "PPN", "C", true, 250),
			23: f("Distributed Copies", "XCN", "O", true, 250),
		}},
		"DSP": {Name: "Display Data", Fields: map[int]FieldDef{
			1: f("Set ID", "SI", "O", false, 4),
			2: f("Display Level", "SI", "O", false, 4),
			3: f("Data Line", "TX", "R", false, 300),
			4: f("Logical Break Point", "ST", "O", false, 2),
			5: f("Result ID", "TX", "O", false, 20),
		}},
	}
}
