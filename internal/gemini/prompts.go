package gemini

import "fmt"

// FallbackDescription is returned to visitors when text generation is down.
const FallbackDescription = "Tonttututka ei juuri nyt toimi, mutta olet varmasti mainio apulainen!"

// DefaultEditPrompt is the elf-portrait edit instruction used when a request
// does not supply its own prompt.
const DefaultEditPrompt = `Edit this photo to create a magical Christmas elf portrait.
1. Add a high-quality, realistic red Christmas elf hat with white fur trim on the person's head.
2. Replace the background with a cozy, festive Christmas scene.
3. Keep the person's face, skin tone, and expression exactly the same.
4. Apply cinematic, warm holiday lighting.
Style: Photorealistic, 4k, highly detailed.`

// BuildDescriptionPrompt embeds the visitor's name, score and level into the
// fixed Santa's-helper persona prompt.
func BuildDescriptionPrompt(name string, score int, level string) string {
	return fmt.Sprintf(`Olet hauska joulupukin apulainen.
Kirjoita lyhyt, 2-3 virkkeen humoristinen ja positiivinen arvio henkilön "tonttutaidoista".
Henkilön nimi: %s
Pisteet tonttutestissä: %d/12
Taso: %s
Vastaa suomeksi. Ole kannustava ja jouluinen.`, name, score, level)
}
