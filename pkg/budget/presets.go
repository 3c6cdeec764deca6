package budget

// Preset names understood by ApplyPreset.
const (
	Preset503020 = "50-30-20"
	Preset602020 = "60-20-20"
	Preset702010 = "70-20-10"
)

var presetOrder = []string{Preset503020, Preset602020, Preset702010}

var presets = map[string]Split{
	Preset503020: {Needs: 50, Wants: 30, Savings: 20},
	Preset602020: {Needs: 60, Wants: 20, Savings: 20},
	Preset702010: {Needs: 70, Wants: 20, Savings: 10},
}

// PresetNames returns the known preset names in display order.
func PresetNames() []string {
	return append([]string(nil), presetOrder...)
}

// Preset looks up a named split.
func Preset(name string) (Split, bool) {
	split, ok := presets[name]
	return split, ok
}

// ApplyPreset substitutes the named preset for current. An unknown name
// leaves current untouched and reports false.
func ApplyPreset(current Split, name string) (Split, bool) {
	split, ok := presets[name]
	if !ok {
		return current, false
	}
	return split, true
}
