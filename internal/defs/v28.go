package defs

// applyV28 layers the 2.8 overlay onto a copy of the 2.5 table: new
// trailing fields plus the type-narrowing pass that retired CE in
// favor of CWE on the key coded lab fields.
func applyV28(t Table) Table {
	msh := t["MSH"].Fields
	msh[22] = f("Sending Responsible Organization", "XON", "O", false, 567)
	msh[23] = f("Receiving Responsible Organization", "XON", "O", false, 567)
	msh[24] = f("Sending Network Address", "HD", "O", false, 227)
	msh[25] = f("Receiving Network Address", "HD", "O", false, 227)

	obx := t["OBX"].Fields
	obx[20] = f("Observation Site", "CWE", "O", true, 250)
	obx[21] = f("Observation Instance Identifier", "EI", "O", false, 22)
	obx[22] = f("Mood Code", "CNE", "O", false, 250)
	obx[23] = f("Performing Organization Name", "XON", "O", false, 567)
	obx[24] = f("Performing Organization Address", "XAD", "O", false, 631)
	obx[25] = f("Performing Organization Medical Director", "XCN", "O", false, 3002)

	narrowCEToCWE(t, map[string][]int{
		"OBX": {3, 6, 15, 17},
		"OBR": {4, 44, 45},
		"DG1": {3},
		"AL1": {2, 3},
	})

	return t
}

// narrowCEToCWE rewrites the listed fields' type code from CE to CWE,
// leaving everything else about each definition intact. Fields that are
// missing or not CE are skipped.
func narrowCEToCWE(t Table, targets map[string][]int) {
	for code, nums := range targets {
		seg, ok := t[code]
		if !ok {
			continue
		}
		for _, num := range nums {
			fd, ok := seg.Fields[num]
			if !ok || fd.Type != "CE" {
				continue
			}
			fd.Type = "CWE"
			seg.Fields[num] = fd
		}
	}
}
