package styles

// Symbols holds the glyph set used to draw prompts, logs and the spinner
type Symbols struct {
	StepActive string // prompt waiting for input
	StepSubmit string // prompt answered
	StepCancel string // prompt cancelled
	StepError  string // prompt showing a validation error

	Bar      string // vertical guide between prompts
	BarStart string // intro corner
	BarEnd   string // closing corner
	BarH     string // horizontal line of note boxes

	CornerTopRight    string
	CornerBottomRight string
	ConnectLeft       string

	RadioActive      string // active select item
	RadioInactive    string // other select items
	CheckboxActive   string // unchecked multiselect item under the cursor
	CheckboxSelected string // checked multiselect item
	CheckboxInactive string // unchecked multiselect item

	PasswordMask rune

	Info    string
	Warning string
	Error   string
	Success string

	SpinnerFrames []string
}

// Default symbols (box drawing and geometric shapes)
var unicodeSymbols = Symbols{
	StepActive: "◆",
	StepSubmit: "◇",
	StepCancel: "■",
	StepError:  "▲",

	Bar:      "│",
	BarStart: "┌",
	BarEnd:   "└",
	BarH:     "─",

	CornerTopRight:    "╮",
	CornerBottomRight: "╯",
	ConnectLeft:       "├",

	RadioActive:      "●",
	RadioInactive:    "○",
	CheckboxActive:   "◻",
	CheckboxSelected: "◼",
	CheckboxInactive: "◻",

	PasswordMask: '▪',

	Info:    "●",
	Warning: "▲",
	Error:   "■",
	Success: "◆",

	SpinnerFrames: []string{"◒", "◐", "◓", "◑"},
}

// ASCII symbols for terminals and fonts without unicode glyphs
var asciiSymbols = Symbols{
	StepActive: "*",
	StepSubmit: "o",
	StepCancel: "x",
	StepError:  "x",

	Bar:      "|",
	BarStart: "T",
	BarEnd:   "-",
	BarH:     "-",

	CornerTopRight:    "+",
	CornerBottomRight: "+",
	ConnectLeft:       "+",

	RadioActive:      ">",
	RadioInactive:    " ",
	CheckboxActive:   "[•]",
	CheckboxSelected: "[+]",
	CheckboxInactive: "[ ]",

	PasswordMask: '*',

	Info:    "•",
	Warning: "!",
	Error:   "x",
	Success: "*",

	SpinnerFrames: []string{"•", "o", "O", "0"},
}

// useASCII tracks whether the ascii glyph set is enabled
var useASCII bool

// currentSymbols holds the active symbol set
var currentSymbols = unicodeSymbols

// SetASCII switches between the unicode and ascii glyph sets
func SetASCII(enabled bool) {
	useASCII = enabled
	if enabled {
		currentSymbols = asciiSymbols
	} else {
		currentSymbols = unicodeSymbols
	}
}

// ASCIIEnabled returns whether the ascii glyph set is enabled
func ASCIIEnabled() bool {
	return useASCII
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// UnicodeSymbols returns the default glyph set regardless of configuration
func UnicodeSymbols() Symbols {
	return unicodeSymbols
}

// ASCIISymbols returns the ascii glyph set regardless of configuration
func ASCIISymbols() Symbols {
	return asciiSymbols
}
