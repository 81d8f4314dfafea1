package datamodel

// Static downtime reason tables. Slice order is declaration order and is the
// order selection UIs present the entries in, so do not sort these.

var downtimeLevel1 = []DowntimeReasonLevel1{
	{ID: "mechanical", Name: "Mechanical", Icon: "Wrench", Color: "red"},
	{ID: "electrical", Name: "Electrical", Icon: "Zap", Color: "red"},
	{ID: "hydraulic", Name: "Hydraulic", Icon: "Droplets", Color: "red"},
	{ID: "material", Name: "Material", Icon: "Package", Color: "orange"},
	{ID: "quality", Name: "Quality", Icon: "CheckCircle", Color: "yellow"},
	{ID: "tooling", Name: "Tooling", Icon: "Hammer", Color: "orange"},
	{ID: "operator", Name: "Operator", Icon: "User", Color: "blue"},
	{ID: "planned", Name: "Planned", Icon: "Calendar", Color: "gray"},
	{ID: "external", Name: "External", Icon: "Building", Color: "purple"},
}

var downtimeLevel2 = []DowntimeReasonLevel2{
	// Mechanical subcategories
	{ID: "mech-drive", ParentID: "mechanical", Name: "Drive System", Icon: "Cog", Color: "red"},
	{ID: "mech-conveyor", ParentID: "mechanical", Name: "Conveyor", Icon: "ArrowRight", Color: "red"},
	{ID: "mech-pneumatic", ParentID: "mechanical", Name: "Pneumatic", Icon: "Wind", Color: "red"},
	{ID: "mech-bearing", ParentID: "mechanical", Name: "Bearings", Icon: "Circle", Color: "red"},
	{ID: "mech-belt", ParentID: "mechanical", Name: "Belts/Chains", Icon: "Link", Color: "red"},
	{ID: "mech-coupling", ParentID: "mechanical", Name: "Couplings", Icon: "Unlink", Color: "red"},
	{ID: "mech-gearbox", ParentID: "mechanical", Name: "Gearbox", Icon: "Settings", Color: "red"},
	{ID: "mech-shaft", ParentID: "mechanical", Name: "Shafts", Icon: "Minus", Color: "red"},
	{ID: "mech-other", ParentID: "mechanical", Name: "Other Mech", Icon: "MoreHorizontal", Color: "red"},

	// Material subcategories
	{ID: "mat-shortage", ParentID: "material", Name: "Shortage", Icon: "AlertTriangle", Color: "orange"},
	{ID: "mat-quality", ParentID: "material", Name: "Poor Quality", Icon: "X", Color: "orange"},
	{ID: "mat-wrong", ParentID: "material", Name: "Wrong Material", Icon: "RefreshCw", Color: "orange"},
	{ID: "mat-contaminated", ParentID: "material", Name: "Contaminated", Icon: "AlertCircle", Color: "orange"},
	{ID: "mat-damaged", ParentID: "material", Name: "Damaged", Icon: "ShieldAlert", Color: "orange"},
	{ID: "mat-expired", ParentID: "material", Name: "Expired", Icon: "Clock", Color: "orange"},
	{ID: "mat-handling", ParentID: "material", Name: "Handling Issue", Icon: "Move", Color: "orange"},
	{ID: "mat-supply", ParentID: "material", Name: "Supply Chain", Icon: "Truck", Color: "orange"},
	{ID: "mat-other", ParentID: "material", Name: "Other Material", Icon: "MoreHorizontal", Color: "orange"},

	// Operator subcategories
	{ID: "op-break", ParentID: "operator", Name: "Break", Icon: "Coffee", Color: "blue"},
	{ID: "op-training", ParentID: "operator", Name: "Training", Icon: "GraduationCap", Color: "blue"},
	{ID: "op-setup", ParentID: "operator", Name: "Setup/Changeover", Icon: "Settings", Color: "blue"},
	{ID: "op-absent", ParentID: "operator", Name: "Operator Absent", Icon: "UserX", Color: "blue"},
	{ID: "op-meeting", ParentID: "operator", Name: "Meeting", Icon: "Users", Color: "blue"},
	{ID: "op-error", ParentID: "operator", Name: "Operator Error", Icon: "AlertTriangle", Color: "blue"},
	{ID: "op-safety", ParentID: "operator", Name: "Safety Issue", Icon: "Shield", Color: "blue"},
	{ID: "op-cleanup", ParentID: "operator", Name: "Cleanup", Icon: "Trash2", Color: "blue"},
	{ID: "op-other", ParentID: "operator", Name: "Other Operator", Icon: "MoreHorizontal", Color: "blue"},
}

var downtimeLevel3 = []DowntimeReasonLevel3{
	// Mechanical > Drive System
	{ID: "mech-drive-motor", ParentID: "mech-drive", Name: "Motor Failure", Icon: "Zap", Color: "red", Frequency: 15},
	{ID: "mech-drive-vfd", ParentID: "mech-drive", Name: "VFD Issue", Icon: "BarChart", Color: "red", Frequency: 8},
	{ID: "mech-drive-coupling", ParentID: "mech-drive", Name: "Coupling Failure", Icon: "Link", Color: "red", Frequency: 12},
	{ID: "mech-drive-overload", ParentID: "mech-drive", Name: "Overload Trip", Icon: "AlertTriangle", Color: "red", Frequency: 20},
	{ID: "mech-drive-vibration", ParentID: "mech-drive", Name: "Excessive Vibration", Icon: "Activity", Color: "red", Frequency: 6},
	{ID: "mech-drive-noise", ParentID: "mech-drive", Name: "Unusual Noise", Icon: "Volume2", Color: "red", Frequency: 4},
	{ID: "mech-drive-temp", ParentID: "mech-drive", Name: "Overheating", Icon: "Thermometer", Color: "red", Frequency: 10},
	{ID: "mech-drive-speed", ParentID: "mech-drive", Name: "Speed Control", Icon: "Gauge", Color: "red", Frequency: 7},
	{ID: "mech-drive-other", ParentID: "mech-drive", Name: "Other Drive", Icon: "MoreHorizontal", Color: "red", Frequency: 3},

	// Material > Shortage
	{ID: "mat-shortage-raw", ParentID: "mat-shortage", Name: "Raw Material", Icon: "Package", Color: "orange", Frequency: 25},
	{ID: "mat-shortage-components", ParentID: "mat-shortage", Name: "Components", Icon: "Puzzle", Color: "orange", Frequency: 18},
	{ID: "mat-shortage-consumables", ParentID: "mat-shortage", Name: "Consumables", Icon: "Droplet", Color: "orange", Frequency: 12},
	{ID: "mat-shortage-packaging", ParentID: "mat-shortage", Name: "Packaging", Icon: "Box", Color: "orange", Frequency: 15},
	{ID: "mat-shortage-labels", ParentID: "mat-shortage", Name: "Labels", Icon: "Tag", Color: "orange", Frequency: 8},
	{ID: "mat-shortage-adhesive", ParentID: "mat-shortage", Name: "Adhesive", Icon: "Droplets", Color: "orange", Frequency: 5},
	{ID: "mat-shortage-fasteners", ParentID: "mat-shortage", Name: "Fasteners", Icon: "Paperclip", Color: "orange", Frequency: 7},
	{ID: "mat-shortage-chemicals", ParentID: "mat-shortage", Name: "Chemicals", Icon: "Flask", Color: "orange", Frequency: 4},
	{ID: "mat-shortage-other", ParentID: "mat-shortage", Name: "Other Shortage", Icon: "MoreHorizontal", Color: "orange", Frequency: 2},

	// Operator > Break
	{ID: "op-break-lunch", ParentID: "op-break", Name: "Lunch Break", Icon: "Utensils", Color: "blue", Frequency: 30},
	{ID: "op-break-coffee", ParentID: "op-break", Name: "Coffee Break", Icon: "Coffee", Color: "blue", Frequency: 25},
	{ID: "op-break-personal", ParentID: "op-break", Name: "Personal Break", Icon: "User", Color: "blue", Frequency: 20},
	{ID: "op-break-shift", ParentID: "op-break", Name: "Shift Change", Icon: "RotateCcw", Color: "blue", Frequency: 15},
	{ID: "op-break-emergency", ParentID: "op-break", Name: "Emergency Break", Icon: "AlertTriangle", Color: "blue", Frequency: 2},
	{ID: "op-break-medical", ParentID: "op-break", Name: "Medical Break", Icon: "Heart", Color: "blue", Frequency: 3},
	{ID: "op-break-safety", ParentID: "op-break", Name: "Safety Break", Icon: "Shield", Color: "blue", Frequency: 5},
	{ID: "op-break-extended", ParentID: "op-break", Name: "Extended Break", Icon: "Clock", Color: "blue", Frequency: 8},
	{ID: "op-break-other", ParentID: "op-break", Name: "Other Break", Icon: "MoreHorizontal", Color: "blue", Frequency: 4},
}
