// Package tables holds the fixed word lists, symbol sets and keyboard data
// that drive password scoring. Tables are plain values: every constructor in
// the scoring packages copies what it needs, so a Tables value can be shared
// freely once loaded.
package tables

import (
	"fmt"
	"io/ioutil"
	"reflect"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"
)

// KeyboardWindow is the length of the keyboard-row slices that count as a
// keyboard walk.
const KeyboardWindow = 4

type Tables struct {
	Words           []string          `yaml:"words"`
	Leet            map[string]string `yaml:"leet"`
	CommonSymbols   string            `yaml:"common_symbols"`
	UncommonSymbols string            `yaml:"uncommon_symbols"`
	Sequences       []string          `yaml:"sequences"`
	KeyboardRows    []string          `yaml:"keyboard_rows"`
}

func Default() Tables {
	return Tables{
		Words: []string{
			"password",
			"letmein",
			"welcome",
			"dragon",
			"monkey",
			"qwerty",
			"baseball",
			"football",
			"sunshine",
			"admin",
			"trustno1",
			"iloveyou",
			"princess",
		},
		Leet: map[string]string{
			"@": "a",
			"4": "a",
			"3": "e",
			"1": "i",
			"!": "i",
			"0": "o",
			"$": "s",
			"5": "s",
			"7": "t",
		},
		CommonSymbols:   `!@#$%^&*()_+-=[]{}|;:'",.<>/?`,
		UncommonSymbols: "`~¡¿§±•¶¡¢£¤¥¦¨©«¬®¯°±²³´µ·¸º»¼½¾¿÷×§",
		// the letter runs are not exhaustive; scores recorded against this
		// list stay comparable only while it is kept as is
		Sequences: []string{
			"0123", "1234", "2345", "3456", "4567", "5678", "6789",
			"abcd", "bcde", "cdef", "fghi", "ijkl", "lmno", "mnop",
		},
		KeyboardRows: []string{
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
			"1234567890",
			"password",
		},
	}
}

// Load overlays the YAML document in bs on top of the default tables. Keys
// missing from the document keep their default values, and so do keys set to
// an empty list, map or string: an override can replace a table but never
// empty it.
func Load(bs []byte) (Tables, error) {
	var overrides Tables
	if err := yaml.Unmarshal(bs, &overrides); err != nil {
		return Tables{}, fmt.Errorf("parsing tables: %w", err)
	}

	t := Default()
	if err := t.Merge(&overrides); err != nil {
		return Tables{}, err
	}

	if err := t.Validate(); err != nil {
		return Tables{}, err
	}

	return t, nil
}

func LoadFile(path string) (Tables, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading tables: %w", err)
	}

	return Load(bs)
}

func (t *Tables) Validate() error {
	var result error

	if len(t.Words) == 0 {
		result = multierror.Append(result, fmt.Errorf("no words specified"))
	}

	for i, word := range t.Words {
		if word == "" {
			result = multierror.Append(result, fmt.Errorf("word %d is empty", i))
		}
	}

	for from, to := range t.Leet {
		if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
			result = multierror.Append(result, fmt.Errorf("leet substitution %q -> %q must map one character to one character", from, to))
		}
	}

	for i, sequence := range t.Sequences {
		if sequence == "" {
			result = multierror.Append(result, fmt.Errorf("sequence %d is empty", i))
		}
	}

	for _, row := range t.KeyboardRows {
		if utf8.RuneCountInString(row) < KeyboardWindow {
			result = multierror.Append(result, fmt.Errorf("keyboard row %q is shorter than %d characters", row, KeyboardWindow))
		}
	}

	return result
}

// LeetRunes returns the leet substitutions keyed by rune. Entries that are not
// single characters are skipped; Validate reports them.
func (t *Tables) LeetRunes() map[rune]rune {
	runes := make(map[rune]rune, len(t.Leet))

	for from, to := range t.Leet {
		if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
			continue
		}

		f, _ := utf8.DecodeRuneInString(from)
		r, _ := utf8.DecodeRuneInString(to)
		runes[f] = r
	}

	return runes
}

func (t *Tables) Merge(other *Tables) error {
	src := reflect.ValueOf(other).Elem()
	dst := reflect.ValueOf(t).Elem()

	return merge(dst, src)
}

// From src/pkg/encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func merge(dst, src reflect.Value) error {
	if !src.IsValid() {
		return nil
	}

	switch src.Kind() {
	case reflect.Struct:
		for i, n := 0, dst.NumField(); i < n; i++ {
			err := merge(dst.Field(i), src.Field(i))
			if err != nil {
				return err
			}
		}
	default:
		if dst.CanSet() && !isEmptyValue(src) {
			dst.Set(src)
		}
	}

	return nil
}
