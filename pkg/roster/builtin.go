package roster

// builtinNames is the default candidate list used when no roster file
// is given. Names are already canonical.
var builtinNames = []string{
	"aatrox", "ahri", "akali", "akshan", "alistar", "ambessa", "amumu",
	"anivia", "annie", "aphelios", "ashe", "aurelionsol", "aurora",
	"azir", "bard", "belveth", "blitzcrank", "brand", "braum", "briar",
	"caitlyn", "camille", "cassiopeia", "chogath", "corki", "darius",
	"diana", "draven", "drmundo", "ekko", "elise", "evelynn", "ezreal",
	"fiddlesticks", "fiora", "fizz", "galio", "gangplank", "garen",
	"gnar", "gragas", "graves", "gwen", "hecarim", "heimerdinger", "hwei",
	"illaoi", "irelia", "ivern", "janna", "jarvaniv", "jax", "jayce",
	"jhin", "jinx", "kaisa", "kalista", "karma", "karthus", "kassadin",
	"katarina", "kayle", "kayn", "kennen", "khazix", "kindred", "kled",
	"kogmaw", "ksante", "leblanc", "leesin", "leona", "lillia",
	"lissandra", "lucian", "lulu", "lux", "malphite", "malzahar",
	"maokai", "masteryi", "mel", "milio", "missfortune", "wukong",
	"mordekaiser", "morgana", "naafiri", "nami", "nasus", "nautilus",
	"neeko", "nidalee", "nilah", "nocturne", "nunuandwillump", "olaf",
	"orianna", "ornn", "pantheon", "poppy", "pyke", "qiyana", "quinn",
	"rakan", "rammus", "reksai", "rell", "renataglasc", "renekton",
	"rengar", "riven", "rumble", "ryze", "samira", "sejuani", "senna",
	"seraphine", "sett", "shaco", "shen", "shyvana", "singed", "sion",
	"sivir", "skarner", "smolder", "sona", "soraka", "swain", "sylas",
	"syndra", "tahmkench", "taliyah", "talon", "taric", "teemo", "thresh",
	"tristana", "trundle", "tryndamere", "twistedfate", "twitch", "udyr",
	"urgot", "varus", "vayne", "veigar", "velkoz", "vex", "vi", "viego",
	"viktor", "vladimir", "volibear", "warwick", "xayah", "xerath",
	"xinzhao", "yasuo", "yone", "yorick", "yuumi", "zac", "zed", "zeri",
	"ziggs", "zilean", "zoe", "zyra",
}

// Builtin returns a roster built from the embedded default list.
func Builtin() *Roster {
	return New(builtinNames)
}
