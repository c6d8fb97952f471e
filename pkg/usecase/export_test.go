package usecase

// NoteItem is exported for tests
type NoteItem = noteItem

var (
	ParseNumber       = parseNumber
	ParseInt          = parseInt
	ParseString       = parseString
	SplitNoteLines    = splitNoteLines
	BuildNoteItems    = buildNoteItems
	BuildClientInput  = buildClientInput
	BuildServiceInput = buildServiceInput
)
