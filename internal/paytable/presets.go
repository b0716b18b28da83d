package paytable

// The six preset winning systems. Amounts are in cents.

var tenTwenty = &Table{
	Name: "tenTwenty",
	Payouts: [NumTiers]Payout{
		{Base: 10, Zimo: 20},
		{Base: 20, Zimo: 40},
		{Base: 40, Zimo: 80},
		{Base: 80, Zimo: 160},
		{Base: 160, Zimo: 320},
	},
}

var twentyForty = &Table{
	Name: "twentyForty",
	Payouts: [NumTiers]Payout{
		{Base: 20, Zimo: 40},
		{Base: 40, Zimo: 80},
		{Base: 80, Zimo: 160},
		{Base: 160, Zimo: 320},
		{Base: 320, Zimo: 640},
	},
}

var threeSixHalf = &Table{
	Name: "threeSixHalf",
	Payouts: [NumTiers]Payout{
		{Base: 50, Zimo: 100},
		{Base: 100, Zimo: 150},
		{Base: 150, Zimo: 250},
		{Base: 250, Zimo: 500},
		{Base: 500, Zimo: 1000},
	},
}

var fiftyOne = &Table{
	Name: "fiftyOne",
	Payouts: [NumTiers]Payout{
		{Base: 50, Zimo: 100},
		{Base: 100, Zimo: 200},
		{Base: 200, Zimo: 400},
		{Base: 400, Zimo: 800},
		{Base: 800, Zimo: 1600},
	},
}

var threeSix = &Table{
	Name: "threeSix",
	Payouts: [NumTiers]Payout{
		{Base: 100, Zimo: 200},
		{Base: 200, Zimo: 300},
		{Base: 300, Zimo: 500},
		{Base: 500, Zimo: 1000},
		{Base: 1000, Zimo: 2000},
	},
}

var oneTwo = &Table{
	Name: "oneTwo",
	Payouts: [NumTiers]Payout{
		{Base: 100, Zimo: 200},
		{Base: 200, Zimo: 400},
		{Base: 400, Zimo: 800},
		{Base: 800, Zimo: 1600},
		{Base: 1600, Zimo: 3200},
	},
}

var presets = map[string]*Table{
	tenTwenty.Name:    tenTwenty,
	twentyForty.Name:  twentyForty,
	threeSixHalf.Name: threeSixHalf,
	fiftyOne.Name:     fiftyOne,
	threeSix.Name:     threeSix,
	oneTwo.Name:       oneTwo,
}

// presetOrder is the display order for preset listings.
var presetOrder = []string{
	tenTwenty.Name,
	twentyForty.Name,
	threeSixHalf.Name,
	fiftyOne.Name,
	threeSix.Name,
	oneTwo.Name,
}

// Default is the winning system a new room starts with.
func Default() *Table {
	return twentyForty
}

// Preset looks up a preset table by name.
func Preset(name string) (*Table, bool) {
	table, ok := presets[name]
	return table, ok
}

// PresetNames lists the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}
