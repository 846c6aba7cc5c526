package vocab

// seedGroup is one canonical word together with the aliases it is seeded
// with.
type seedGroup struct {
	canonical string
	class     Class
	aliases   []string
}

// seedGroups is the built-in vocabulary every new Table starts with. This is
// a fixed, documented list; games extend it at runtime through Register, they
// do not edit it.
var seedGroups = []seedGroup{
	{canonical: "examine", class: Verb, aliases: []string{"x", "look", "inspect", "check", "read", "study"}},
	{canonical: "take", class: Verb, aliases: []string{"get", "grab", "pick", "acquire", "obtain"}},
	{canonical: "attack", class: Verb, aliases: []string{"hit", "fight", "kill", "strike", "punch", "stab"}},
	{canonical: "go", class: Verb, aliases: []string{"walk", "run", "move", "travel", "head"}},
	{canonical: "put", class: Verb, aliases: []string{"place", "insert", "set"}},
	{canonical: "drop", class: Verb, aliases: []string{"discard", "release"}},
	{canonical: "give", class: Verb, aliases: []string{"hand", "offer"}},
	{canonical: "open", class: Verb, aliases: []string{"unlock"}},
	{canonical: "close", class: Verb, aliases: []string{"shut"}},
	{canonical: "talk", class: Verb, aliases: []string{"speak", "say", "ask"}},
	{canonical: "use", class: Verb, aliases: []string{"combine", "apply"}},
	{canonical: "wear", class: Verb, aliases: []string{"don"}},
	{canonical: "inventory", class: Verb, aliases: []string{"inven", "i"}},
	{canonical: "help", class: Verb, aliases: []string{"?"}},
	{canonical: "quit", class: Verb, aliases: []string{"bye", "exit"}},
	{canonical: "north", class: Direction, aliases: []string{"n"}},
	{canonical: "south", class: Direction, aliases: []string{"s"}},
	{canonical: "east", class: Direction, aliases: []string{"e"}},
	{canonical: "west", class: Direction, aliases: []string{"w"}},
	{canonical: "up", class: Direction, aliases: []string{"u"}},
	{canonical: "down", class: Direction, aliases: []string{"d"}},
}
