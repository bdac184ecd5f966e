package reporter

// Sheet names of the generated workbook.
const (
	SheetOverview = "Overview"
	SheetMatches  = "Matches"
	SheetOnlyA    = "Only_in_A"
	SheetOnlyB    = "Only_in_B"
	SheetAll      = "All"
)

// Column widths applied to every sheet.
const (
	statusColumnWidth   = 22
	pathnameColumnWidth = 80
	sourceColumnWidth   = 20
)
