package meaning

var hueProfiles = []hueProfile{
	{
		Range: HueRange{350, 15},
		Name:  "Red",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Tenderness", "Innocence", "Calm Affection"},
				Description: "Red's aggressive arousal is completely neutralized. This soft blush evokes universal love, gentleness, and physical relaxation — lowering anxiety while maintaining warmth.",
			},
			Vivid: {
				Emotions:    []string{"Passion", "Urgency", "Impulse"},
				Description: "Maximum arousal state. Raises heart rate, blood pressure, and breathing — triggering fight-or-flight. Represents danger, desire, and immediate action.",
			},
			Dark: {
				Emotions:    []string{"Authority", "Controlled Power", "Elegance"},
				Description: "Transforms red's impulsive fire into intellectual weight. Burgundy and crimson convey nobility, fine wine, and deep seriousness — demanding respect, not reaction.",
			},
			Muted: {
				Emotions:    []string{"Nostalgia", "Earthiness", "Rustic Comfort"},
				Description: "Stripped of alarm, this terracotta tone feels organic and grounded. It creates inviting, homey spaces reminiscent of sun-baked clay and autumn harvests.",
			},
			Balanced: {
				Emotions:    []string{"Energy", "Confidence", "Warmth"},
				Description: "A well-tempered red that balances stimulation with approachability. It energizes without overwhelming.",
			},
		},
	},
	{
		Range: HueRange{15, 30},
		Name:  "Red-Orange",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Warmth", "Intimacy", "Gentle Energy"},
				Description: "A soft coral that mirrors human skin tones, evoking intimacy, beauty care, and tender connection. Feels inviting without being demanding.",
			},
			Vivid: {
				Emotions:    []string{"Excitement", "Appetite", "Dynamic Action"},
				Description: "Maximizes appetite stimulation and physical hype. Vermilion-level energy that drives impulse decisions and embodies athletic dynamism.",
			},
			Dark: {
				Emotions:    []string{"Stability", "Harvest", "Endurance"},
				Description: "Brick and terracotta tones channel autumn resilience. They project grounded dependability and traditional craftsmanship.",
			},
			Muted: {
				Emotions:    []string{"Domesticity", "Natural Warmth", "Ease"},
				Description: "A calming earthy tone that feels homely and ecological. Removed from red-orange's high-energy core, it creates safe, nurturing environments.",
			},
			Balanced: {
				Emotions:    []string{"Sociability", "Vitality", "Enthusiasm"},
				Description: "Blends red's intensity with orange's friendliness into an approachable, outgoing energy.",
			},
		},
	},
	{
		Range: HueRange{30, 48},
		Name:  "Orange",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Kindness", "Support", "Approachability"},
				Description: "Peach tones evoke gentle encouragement and soft dialogue. Psychologically soothing yet subtly warm, they work perfectly in wellness and care contexts.",
			},
			Vivid: {
				Emotions:    []string{"Adventure", "Alertness", "Playfulness"},
				Description: "Commands instant visibility — the reason for traffic cones and life vests. Radiates youthful optimism, fearless exploration, and uninhibited social energy.",
			},
			Dark: {
				Emotions:    []string{"Ambition", "Assertion", "Tension"},
				Description: "Burnt orange channels intense drive and self-proving energy. At its darkest, it risks projecting excessive ambition, opportunism, or aggressive competitiveness.",
			},
			Muted: {
				Emotions:    []string{"Comfort", "Earth Tones", "Belonging"},
				Description: "Autumn leaves and warm wood. This desaturated orange provides worldly comfort and ecological grounding without visual fatigue.",
			},
			Balanced: {
				Emotions:    []string{"Creativity", "Optimism", "Social Warmth"},
				Description: "The sweet spot of orange — creative, warm, and inviting without the extremes of neon or rust.",
			},
		},
	},
	{
		Range: HueRange{48, 60},
		Name:  "Amber",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Dawn", "Gentle Hope", "Inner Light"},
				Description: "Like the first rays of sunrise, this delicate warm glow provides comforting optimism and a quiet invitation to begin anew.",
			},
			Vivid: {
				Emotions:    []string{"Confidence", "Boldness", "Radiance"},
				Description: "Projects strong self-assurance and outgoing charisma. Highly energizing but can tip into perceived arrogance when overused.",
			},
			Dark: {
				Emotions:    []string{"Wealth", "Heritage", "Prestige"},
				Description: "Approaches gold — channeling centuries of royal association. Communicates traditional richness, permanence, and authoritative warmth.",
			},
			Muted: {
				Emotions:    []string{"Timelessness", "Comfort", "Yearning"},
				Description: "A nostalgic amber that combines autumnal wistfulness with the security of home. It evokes fond memories and quiet contentment.",
			},
			Balanced: {
				Emotions:    []string{"Warmth", "Positivity", "Invitation"},
				Description: "Balanced amber radiates welcoming energy — cheerful without being childish, warm without being aggressive.",
			},
		},
	},
	{
		Range: HueRange{60, 80},
		Name:  "Yellow",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"New Beginnings", "Softened Joy", "Childhood"},
				Description: "Yellow's stimulating glare is gently diffused. This lemon chiffon evokes innocent optimism, caring environments, and fresh starts without visual strain.",
			},
			Vivid: {
				Emotions:    []string{"Alertness", "Serotonin Boost", "Maximum Visibility"},
				Description: "The most luminous color in the spectrum. Instantly captures attention, triggers serotonin release, and creates the highest contrast with black — hence its use in warnings and taxis.",
			},
			Dark: {
				Emotions:    []string{"Intellect", "Gravitas", "Grounded Warmth"},
				Description: "Mustard transforms yellow's fleeting cheer into lasting sophistication. It conveys bookish wisdom, autumnal depth, and corporate warmth.",
			},
			Muted: {
				Emotions:    []string{"Natural Support", "Linen", "Quiet Background"},
				Description: "Ecru and flax tones lose all solar associations. They become invisible supporters — natural, organic backdrops that never compete with content.",
			},
			Balanced: {
				Emotions:    []string{"Happiness", "Clarity", "Mental Stimulation"},
				Description: "Pure, balanced yellow activates the analytical mind, promoting clear thinking and an uplifting sense of possibility.",
			},
		},
	},
	{
		Range: HueRange{80, 140},
		Name:  "Green",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Healing", "Tranquility", "Stress Relief"},
				Description: "Mint tones have scientifically documented calming effects. They lower anxiety levels, promote recovery, and create therapeutic spaces ideal for healthcare settings.",
			},
			Vivid: {
				Emotions:    []string{"Vitality", "Nature", "Prosperity"},
				Description: "Grass green embodies life force, organic health, and financial growth. The color of ecological movements and growth-oriented brands.",
			},
			Dark: {
				Emotions:    []string{"Stability", "Ambition", "Deep Roots"},
				Description: "Forest green projects institutional permanence and economic power. It signals reliability and wealth but at its extreme can evoke greed and impenetrability.",
			},
			Muted: {
				Emotions:    []string{"Harmony", "Rest", "Organic Calm"},
				Description: "Sage green is the antidote to screen fatigue. It minimizes visual strain, creates gender-neutral warmth, and maximizes feelings of natural balance.",
			},
			Balanced: {
				Emotions:    []string{"Growth", "Safety", "Renewal"},
				Description: "The most restful color for the human eye. It signals safety, natural abundance, and continuous renewal.",
			},
		},
	},
	{
		Range: HueRange{140, 185},
		Name:  "Teal",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Emotional Healing", "Purification", "Protection"},
				Description: "Aqua tones evoke water's cleansing power. They provide psychological shielding, spiritual calm, and a sense of emotional recovery.",
			},
			Vivid: {
				Emotions:    []string{"Tropical Energy", "Inspiration", "Communication"},
				Description: "Turquoise carries the vibrancy of tropical seas. It opens creative channels, sparks joyful dialogue, and creates an atmosphere of inspired freshness.",
			},
			Dark: {
				Emotions:    []string{"Sophistication", "Exclusivity", "Enigma"},
				Description: "Deep teal projects dramatic luxury, intellectual complexity, and elite taste. A premium color that adds mystery and richness to any context.",
			},
			Muted: {
				Emotions:    []string{"Reflection", "Modern Calm", "Thoughtfulness"},
				Description: "A contemplative, non-fatiguing tone perfect for interfaces. It balances technological modernity with human-centered warmth.",
			},
			Balanced: {
				Emotions:    []string{"Refreshment", "Clarity", "Equilibrium"},
				Description: "Balanced teal merges green's harmony with blue's trust — creating a versatile, refreshing, and universally pleasant presence.",
			},
		},
	},
	{
		Range: HueRange{185, 255},
		Name:  "Blue",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Freedom", "Peace", "Serenity"},
				Description: "Baby blue mirrors clear skies — reducing cortisol, lowering blood pressure, and creating vast psychological openness. It protects without dominating.",
			},
			Vivid: {
				Emotions:    []string{"Trust", "Efficiency", "Dynamic Clarity"},
				Description: "Azure commands professional admiration and technological confidence. The go-to for platforms needing speed, reliability, and open communication.",
			},
			Dark: {
				Emotions:    []string{"Authority", "Law", "Unwavering Loyalty"},
				Description: "Navy blue is the universal symbol of institutional power. It governs corporate boardrooms, legal systems, and military uniforms — projecting unyielding discipline.",
			},
			Muted: {
				Emotions:    []string{"Durability", "Quiet Loyalty", "Melancholy"},
				Description: "Steel blue and denim tones evoke timeless reliability and industrial strength. However, excessive use can project emotional distance and depression.",
			},
			Balanced: {
				Emotions:    []string{"Logic", "Productivity", "Calm Focus"},
				Description: "The world's most preferred color. Blue reduces heart rate, promotes logical thinking, and builds deep trust through consistent calm.",
			},
		},
	},
	{
		Range: HueRange{255, 285},
		Name:  "Indigo",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Dreaminess", "Gentle Calm", "Ethereal"},
				Description: "A weightless lavender-indigo that dissolves mental tension. It eases the transition to rest and creates a boundary-softened, meditative atmosphere.",
			},
			Vivid: {
				Emotions:    []string{"Artistic Vision", "Innovation", "Boundary-Breaking"},
				Description: "Electrifying indigo pushes creative limits. It stimulates visionary thinking, breaks conventional patterns, and projects futuristic ambition.",
			},
			Dark: {
				Emotions:    []string{"Deep Introspection", "Cosmic Mystery", "Wisdom"},
				Description: "The color of midnight oceans and distant nebulae. Deep indigo draws the mind inward toward meditation, spiritual exploration, and profound contemplation.",
			},
			Muted: {
				Emotions:    []string{"Modern Edge", "Industrial Cool", "Reserved Power"},
				Description: "A sophisticated gray-purple that projects technological capability without emotional excess. Feels corporate yet creative.",
			},
			Balanced: {
				Emotions:    []string{"Intuition", "Contemplation", "Depth"},
				Description: "Indigo bridges analytical blue and mystical violet — encouraging deep thought, heightened perception, and structured imagination.",
			},
		},
	},
	{
		Range: HueRange{285, 320},
		Name:  "Purple",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Romance", "Nostalgia", "Gentle Healing"},
				Description: "Lavender is deeply therapeutic. It calms trauma responses, evokes romantic nostalgia, and creates safe emotional spaces with its soft, feminine character.",
			},
			Vivid: {
				Emotions:    []string{"Magic", "Fantasy", "Creative Power"},
				Description: "Bright purple ignites imagination and wonder. It channels childhood fantasy, mystical energy, and showmanship — the color of magicians and visionaries.",
			},
			Dark: {
				Emotions:    []string{"Royal Authority", "Opulence", "Gravitas"},
				Description: "Eggplant and plum tones carry centuries of regal weight. They project unquestioned luxury and elite status, but may feel oppressive in large doses.",
			},
			Muted: {
				Emotions:    []string{"Elegant Melancholy", "Old World Charm", "Quiet Dignity"},
				Description: "Dusty purple whispers of aged manuscripts and faded royalty. It provides understated sophistication with a sense of historical depth.",
			},
			Balanced: {
				Emotions:    []string{"Imagination", "Luxury", "Spiritual Balance"},
				Description: "Purple holds the tension between red's passion and blue's reason — sparking creativity at the intersection of body and mind.",
			},
		},
	},
	{
		Range: HueRange{320, 340},
		Name:  "Magenta",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Compassion", "Empathy", "Universal Love"},
				Description: "Pink-lavender tones dissolve conflict. They project unconditional acceptance, selfless kindness, and emotional availability.",
			},
			Vivid: {
				Emotions:    []string{"Rebellion", "Innovation", "Drama"},
				Description: "Fuchsia shatters conventions. It's the color of avant-garde movements, radical self-expression, and unapologetic creative disruption.",
			},
			Dark: {
				Emotions:    []string{"Haute Couture", "Exotic Mystery", "Deep Allure"},
				Description: "Orchid-dark magenta channels fashion's highest echelon — projecting enigmatic beauty, exotic sophistication, and rare exclusivity.",
			},
			Muted: {
				Emotions:    []string{"Mature Compassion", "Boundaries", "Refined Grace"},
				Description: "A balanced warmth that knows its limits. It expresses care with dignity, offering emotional support without losing composure.",
			},
			Balanced: {
				Emotions:    []string{"Harmony", "Transformation", "Creative Bridge"},
				Description: "Extra-spectral magenta exists only in the mind — bridging the spectrum's two edges. It represents universal connection and transformative change.",
			},
		},
	},
	{
		Range: HueRange{340, 350},
		Name:  "Rose",
		Variants: map[Tone]Reading{
			Pastel: {
				Emotions:    []string{"Tenderness", "Sweetness", "Blush"},
				Description: "The softest expression of warmth. Rose pastels feel like a gentle blush — nurturing, non-threatening, and deeply comforting.",
			},
			Vivid: {
				Emotions:    []string{"Passion", "Romance", "Vibrant Femininity"},
				Description: "Hot rose commands attention with romantic intensity. It's bold, flirtatious, and unapologetically expressive.",
			},
			Dark: {
				Emotions:    []string{"Depth", "Wine", "Sensual Elegance"},
				Description: "Deep rose carries the weight of aged wine — rich, contemplative, and imbued with sensual sophistication.",
			},
			Muted: {
				Emotions:    []string{"Vintage", "Dusty Romance", "Subtle Warmth"},
				Description: "Faded rose evokes pressed flowers and vintage love letters — carrying emotional weight in the most understated way.",
			},
			Balanced: {
				Emotions:    []string{"Affection", "Beauty", "Gentle Strength"},
				Description: "Balanced rose combines warmth with poise — expressing love and beauty without excess.",
			},
		},
	},
}

var unknownHue = hueProfile{
	Range: HueRange{0, 360},
	Name:  "Unique Hue",
	Variants: map[Tone]Reading{
		Pastel: {
			Emotions:    []string{"Softness", "Subtlety"},
			Description: "A delicate and unique tone.",
		},
		Vivid: {
			Emotions:    []string{"Energy", "Distinction"},
			Description: "A striking and original shade.",
		},
		Dark: {
			Emotions:    []string{"Depth", "Intrigue"},
			Description: "A deep and compelling color.",
		},
		Muted: {
			Emotions:    []string{"Restraint", "Character"},
			Description: "An understated hue with personality.",
		},
		Balanced: {
			Emotions:    []string{"Diversity", "Modernity"},
			Description: "A complex shade with its own emotional fingerprint.",
		},
	},
}
