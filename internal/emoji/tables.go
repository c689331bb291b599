package emoji

// genreCandidates maps a lowercased genre to the emoji tags it may be shown
// with. An empty list is the explicit "no emoji" marker.
var genreCandidates = map[string][]string{
	"action":          {"em-boom", "em-gun", "em-punch", "em-collision"},
	"adventure":       {"em-compass", "em-world_map", "em-mountain_snow"},
	"animation":       {"em-art", "em-lower_left_crayon"},
	"biography":       {"em-book", "em-memo"},
	"comedy":          {"em-joy", "em-laughing", "em-clown_face"},
	"crime":           {"em-cop", "em-knife", "em-sleuth_or_spy"},
	"documentary":     {"em-movie_camera", "em-microscope"},
	"drama":           {"em-performing_arts", "em-cry"},
	"family":          {"em-family", "em-house_with_garden"},
	"fantasy":         {"em-unicorn_face", "em-mage", "em-dragon"},
	"history":         {"em-scroll", "em-classical_building"},
	"horror":          {"em-ghost", "em-skull", "em-jack_o_lantern"},
	"music":           {"em-musical_note", "em-guitar"},
	"musical":         {"em-microphone", "em-notes"},
	"mystery":         {"em-mag", "em-question"},
	"romance":         {"em-heart", "em-kiss", "em-couple_with_heart"},
	"sci-fi":          {"em-rocket", "em-alien", "em-robot_face"},
	"science fiction": {"em-rocket", "em-alien", "em-robot_face"},
	"sport":           {"em-soccer", "em-trophy"},
	"thriller":        {"em-scream", "em-hocho"},
	"war":             {"em-crossed_swords", "em-medal"},
	"western":         {"em-face_with_cowboy_hat", "em-horse"},

	"short":      {},
	"film-noir":  {},
	"news":       {},
	"reality-tv": {},
	"talk-show":  {},
	"game-show":  {},
	"adult":      {},
}

// languagePassList holds language codes that have no country flag.
var languagePassList = map[string]struct{}{
	"haw": {},
	"la":  {},
	"eo":  {},
	"ia":  {},
	"sa":  {},
	"yi":  {},
	"ku":  {},
	"gd":  {},
	"zxx": {},
}

// languageAliases maps a language code to the country code of its flag.
var languageAliases = map[string]string{
	"en": "gb",
	"ja": "jp",
	"ko": "kr",
	"zh": "cn",
	"cs": "cz",
	"da": "dk",
	"el": "gr",
	"he": "il",
	"hi": "in",
	"ta": "in",
	"te": "in",
	"sv": "se",
	"uk": "ua",
	"vi": "vn",
	"fa": "ir",
	"ar": "sa",
	"nb": "no",
	"nn": "no",
	"sr": "rs",
	"sl": "si",
	"et": "ee",
	"ga": "ie",
	"ms": "my",
	"ur": "pk",
	"bn": "bd",
	"ka": "ge",
	"kk": "kz",
	"hy": "am",
	"sq": "al",
	"be": "by",
	"ca": "es",
	"eu": "es",
	"gl": "es",
	"tl": "ph",
	"sw": "ke",
}

// plainFlagNames are flag codes exposed by the emoji stylesheet without the
// "flag-" prefix.
var plainFlagNames = map[string]struct{}{
	"cn": {},
	"de": {},
	"es": {},
	"fr": {},
	"gb": {},
	"it": {},
	"jp": {},
	"kr": {},
	"ru": {},
	"us": {},
}
