package tui

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyType identifies a key. Printable characters are KeyRune, control
// characters are KeyCtrl; both carry the character in KeyCode.Rune.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyCtrl
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyShiftTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeySpace:     " ",
	KeyTab:       "tab",
	KeyShiftTab:  "shift+tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

// KeyKind tells a press from a repeat or a release. Terminals without an
// extended keyboard protocol only ever report presses.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	default:
		return "press"
	}
}

// KeyCode identifies the key itself. Ctrl marks a named key held with
// control, such as ctrl+up; control characters use KeyCtrl instead.
type KeyCode struct {
	Type KeyType
	Rune rune
	Alt  bool
	Ctrl bool
}

// Key returns the KeyCode of a named key.
func Key(t KeyType) KeyCode {
	return KeyCode{Type: t}
}

// Rune returns the KeyCode of a printable character.
func Rune(r rune) KeyCode {
	return KeyCode{Type: KeyRune, Rune: r}
}

// Ctrl returns the KeyCode of ctrl plus a letter, e.g. Ctrl('c').
func Ctrl(r rune) KeyCode {
	return KeyCode{Type: KeyCtrl, Rune: r}
}

func (k KeyCode) String() string {
	var name string
	switch k.Type {
	case KeyRune:
		name = string(k.Rune)
	case KeyCtrl:
		name = "ctrl+" + string(k.Rune)
	default:
		var ok bool
		if name, ok = keyNames[k.Type]; !ok {
			name = "key(" + strconv.Itoa(int(k.Type)) + ")"
		}
	}
	if k.Ctrl && k.Type != KeyCtrl {
		name = "ctrl+" + name
	}
	if k.Alt {
		return "alt+" + name
	}
	return name
}

// KeyEvent is a decoded keyboard event.
type KeyEvent struct {
	Code KeyCode
	Kind KeyKind
}

// ParseKeys decodes raw terminal input into key events. Mouse reports and
// unknown escape sequences are consumed without producing events. An escape
// sequence cut off at the end of the buffer is dropped.
func ParseKeys(b []byte) []KeyEvent {
	var events []KeyEvent
	for len(b) > 0 {
		ev, n, ok := decodeKey(b)
		if ok {
			events = append(events, ev)
		}
		b = b[n:]
	}
	return events
}

func decodeKey(b []byte) (KeyEvent, int, bool) {
	c := b[0]
	switch {
	case c == 0x1b:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return press(Key(KeyEnter)), 1, true
	case c == '\t':
		return press(Key(KeyTab)), 1, true
	case c == 0x7f || c == 0x08:
		return press(Key(KeyBackspace)), 1, true
	case c == ' ':
		return press(Key(KeySpace)), 1, true
	case c == 0x00:
		return press(Ctrl('@')), 1, true
	case c < 0x1b:
		return press(Ctrl(rune('a' + c - 1))), 1, true
	case c < 0x20:
		return press(Ctrl(rune("\\]^_"[c-0x1c]))), 1, true
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return KeyEvent{}, 1, false
	}
	return press(Rune(r)), size, true
}

func decodeEscape(b []byte) (KeyEvent, int, bool) {
	if len(b) == 1 || b[1] == 0x1b {
		return press(Key(KeyEsc)), 1, true
	}
	switch b[1] {
	case '[':
		return decodeCSI(b)
	case 'O':
		if len(b) >= 3 {
			if t, ok := ss3Keys[b[2]]; ok {
				return press(Key(t)), 3, true
			}
			return KeyEvent{}, 3, false
		}
	}

	// ESC followed by a plain key is alt+key.
	ev, n, ok := decodeKey(b[1:])
	ev.Code.Alt = true
	return ev, n + 1, ok
}

var ss3Keys = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

var csiLetterKeys = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'S': KeyF4,
	'Z': KeyShiftTab,
}

var csiTildeKeys = map[int]KeyType{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPgUp,
	6:  KeyPgDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

func decodeCSI(b []byte) (KeyEvent, int, bool) {
	// X10 mouse report: ESC [ M Cb Cx Cy
	if len(b) >= 3 && b[2] == 'M' {
		return KeyEvent{}, min(6, len(b)), false
	}
	// ESC [ on its own is alt+[
	if len(b) == 2 {
		return press(KeyCode{Type: KeyRune, Rune: '[', Alt: true}), 2, true
	}

	end := -1
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		return KeyEvent{}, len(b), false
	}
	n := end + 1
	params := string(b[2:end])
	final := b[end]

	// SGR mouse report: ESC [ < b ; x ; y M|m
	if strings.HasPrefix(params, "<") {
		return KeyEvent{}, n, false
	}

	fields := strings.Split(params, ";")
	kind := KeyPress
	var mods int
	if len(fields) > 1 {
		kind = eventKind(fields[1])
		mods = modifiers(fields[1])
	}

	var ev KeyEvent
	switch final {
	case '~':
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return KeyEvent{}, n, false
		}
		t, ok := csiTildeKeys[code]
		if !ok {
			return KeyEvent{}, n, false
		}
		ev = KeyEvent{Code: Key(t)}
	case 'u':
		// CSI code ; modifiers:event u
		code, err := strconv.Atoi(strings.SplitN(fields[0], ":", 2)[0])
		if err != nil || code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return KeyEvent{}, n, false
		}
		var ok bool
		if ev, _, ok = decodeKey([]byte(string(rune(code)))); !ok {
			return KeyEvent{}, n, false
		}
	default:
		t, ok := csiLetterKeys[final]
		if !ok {
			return KeyEvent{}, n, false
		}
		ev = KeyEvent{Code: Key(t)}
	}

	ev.Kind = kind
	ev.Code = applyModifiers(ev.Code, mods)
	return ev, n, true
}

// Modifier bits of the "modifiers" parameter, which is sent as 1 + bits.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// modifiers reads the bit mask from a "modifiers:event" parameter.
func modifiers(field string) int {
	mod, _, _ := strings.Cut(field, ":")
	n, err := strconv.Atoi(mod)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

func applyModifiers(code KeyCode, mods int) KeyCode {
	if mods&modCtrl != 0 {
		switch code.Type {
		case KeyRune:
			code = KeyCode{Type: KeyCtrl, Rune: unicode.ToLower(code.Rune), Alt: code.Alt}
		case KeyCtrl:
		default:
			code.Ctrl = true
		}
	}
	if mods&modAlt != 0 {
		code.Alt = true
	}
	return code
}

// eventKind reads the ":event" part of a "modifiers:event" parameter.
func eventKind(field string) KeyKind {
	_, ev, found := strings.Cut(field, ":")
	if !found {
		return KeyPress
	}
	switch ev {
	case "2":
		return KeyRepeat
	case "3":
		return KeyRelease
	default:
		return KeyPress
	}
}

func press(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Kind: KeyPress}
}
