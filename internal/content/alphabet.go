package content

// LetterData holds the teaching material for one letter of the alphabet.
// PhoneticText is the exact phrase the phonics synthesizer speaks.
type LetterData struct {
	Letter       string `json:"letter"`
	Word         string `json:"word"`
	Emoji        string `json:"emoji"`
	PhoneticText string `json:"phoneticText"`
}

// alphabetOrder fixes iteration order for distractor picking and listing.
var alphabetOrder = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// alphabetDB is the curated letter table, Brazilian Portuguese throughout.
var alphabetDB = map[string]LetterData{
	"A": {Letter: "A", Word: "Avião", Emoji: "✈️", PhoneticText: "Áhhh. A de Avião."},
	"B": {Letter: "B", Word: "Bola", Emoji: "⚽", PhoneticText: "Bê. A letra Bê tem som de Bú. Bola."},
	"C": {Letter: "C", Word: "Casa", Emoji: "🏠", PhoneticText: "Cê. A letra Cê. Casa."},
	"D": {Letter: "D", Word: "Dado", Emoji: "🎲", PhoneticText: "Dê. Dado."},
	"E": {Letter: "E", Word: "Elefante", Emoji: "🐘", PhoneticText: "Éhhh. E de Elefante."},
	"F": {Letter: "F", Word: "Faca", Emoji: "🔪", PhoneticText: "Éfe. Faca."},
	"G": {Letter: "G", Word: "Gato", Emoji: "🐱", PhoneticText: "Gê. Gato."},
	"H": {Letter: "H", Word: "Hipopótamo", Emoji: "🦛", PhoneticText: "Agá. Hipopótamo."},
	"I": {Letter: "I", Word: "Ilha", Emoji: "🏝️", PhoneticText: "Íiii. Ilha."},
	"J": {Letter: "J", Word: "Jacaré", Emoji: "🐊", PhoneticText: "Jóta. Jacaré."},
	"K": {Letter: "K", Word: "Kiwi", Emoji: "🥝", PhoneticText: "Cá. Kiwi."},
	"L": {Letter: "L", Word: "Leão", Emoji: "🦁", PhoneticText: "Éle. Leão."},
	"M": {Letter: "M", Word: "Macaco", Emoji: "🐒", PhoneticText: "Ême. Macaco."},
	"N": {Letter: "N", Word: "Navio", Emoji: "🚢", PhoneticText: "Êne. Navio."},
	"O": {Letter: "O", Word: "Ovo", Emoji: "🥚", PhoneticText: "Óhh. Ovo."},
	"P": {Letter: "P", Word: "Pato", Emoji: "🦆", PhoneticText: "Pê. Pato."},
	"Q": {Letter: "Q", Word: "Queijo", Emoji: "🧀", PhoneticText: "Quê. Queijo."},
	"R": {Letter: "R", Word: "Rato", Emoji: "🐭", PhoneticText: "Érre. Rato."},
	"S": {Letter: "S", Word: "Sol", Emoji: "☀️", PhoneticText: "Ésse. Sol."},
	"T": {Letter: "T", Word: "Tatu", Emoji: "🦔", PhoneticText: "Tê. Tatu."},
	"U": {Letter: "U", Word: "Uva", Emoji: "🍇", PhoneticText: "Úuu. Uva."},
	"V": {Letter: "V", Word: "Vaca", Emoji: "🐮", PhoneticText: "Vê. Vaca."},
	"W": {Letter: "W", Word: "Web", Emoji: "🌐", PhoneticText: "Dábliu. Web."},
	"X": {Letter: "X", Word: "Xícara", Emoji: "☕", PhoneticText: "Xis. Xícara."},
	"Y": {Letter: "Y", Word: "YouTube", Emoji: "📺", PhoneticText: "Ípsilon. YouTube."},
	"Z": {Letter: "Z", Word: "Zebra", Emoji: "🦓", PhoneticText: "Zê. Zebra."},
}

// Letters returns the alphabet in order.
func Letters() []string {
	out := make([]string, len(alphabetOrder))
	copy(out, alphabetOrder)
	return out
}

// LookupLetter returns the letter data for an uppercase letter.
func LookupLetter(letter string) (LetterData, bool) {
	data, ok := alphabetDB[letter]
	return data, ok
}
