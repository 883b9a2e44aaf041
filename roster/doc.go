// Package roster builds the synthetic player table behind every figure.
//
// 🚀 What is in a roster?
//
//	One row per player: an identifier, a latent "true skill", two observed
//	match ratings (first half, second half), their z-scores and absolute
//	z-scores, and two plotting columns (group label and dot size) that stay
//	at their zero values until a figure annotates a copy of the table.
//
// ✨ Generation model:
//
//	skill_i        ~ Normal(6.8, 0.4)
//	rating_{i,h}   = clip(skill_i + noise_{i,h}, 3, 10),  noise ~ Normal(0, 1)
//	z_{i,h}        = (rating_{i,h} − mean_h) / std_h     (population std)
//
//	Because the noise is independent between halves, players with extreme
//	first-half ratings are mostly players with lucky (or unlucky) noise, and
//	their second-half ratings drift back toward the population mean.
//
// ⚙️ Usage:
//
//	t, err := roster.Generate(roster.WithPlayers(200), roster.WithSeed(7))
//	fh, _ := t.Column(roster.RatingFH)
//
// Generation is deterministic: identical options always yield an identical table.
package roster
