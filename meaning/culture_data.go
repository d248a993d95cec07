package meaning

var cultureBands = []cultureBand{
	{
		Range: HueRange{345, 20},
		Analysis: Analysis{
			Family: "Red",
			Notes: []Note{
				{"Western", "Passion, love, danger, urgency. Signals 'stop' and financial loss in stock markets.", Neutral},
				{"China", "Good luck, prosperity, celebration. Worn at weddings. Signals financial gain in stock markets.", Positive},
				{"Japan", "The sun, authority, sacrifice, and joy. Central to the national flag (Hinomaru).", Positive},
				{"Middle East", "Can represent danger and evil forces, but also vitality and courage in Persian art.", Neutral},
				{"Latin America", "Blood and the sun in Aztec belief. Paired with white, it represents Catholicism.", Neutral},
			},
			Warnings:  []string{"Red/Green stock market colors are inverted between Western and East Asian markets."},
			DesignTip: "For Chinese audiences, red CTA buttons boost trust and conversions. In Western UX, reserve red for errors and destructive actions.",
		},
	},
	{
		Range: HueRange{20, 40},
		Analysis: Analysis{
			Family: "Orange",
			Notes: []Note{
				{"Western", "Autumn, harvest, Halloween, warmth. Associated with gluttony in Christianity.", Positive},
				{"East Asia", "Happiness, good health, and spiritual transformation in Buddhism.", Positive},
				{"Middle East", "Associated with mourning and loss. Use with caution.", Warning},
				{"Latin America", "In Colombia, directly linked to sexuality and fertility.", Neutral},
			},
			Warnings:  []string{"Avoid orange as a primary color in Middle Eastern markets — it can evoke grief."},
			DesignTip: "Safe warm alternative to red for Latin American markets. Use golden-orange instead of pure yellow to avoid 'death' associations.",
		},
	},
	{
		Range: HueRange{40, 52},
		Analysis: Analysis{
			Family: "Gold / Amber",
			Notes: []Note{
				{"Western", "Wealth, achievement, prestige. Used for trophies, medals, and premium branding.", Positive},
				{"China", "Imperial power and heavenly authority. Gold and yellow were reserved for emperors for millennia.", Positive},
				{"Japan", "Prosperity and the beauty of impermanence (Kintsugi — repairing with gold).", Positive},
				{"Middle East", "Divine light, eternal radiance, and undeniable wealth. Gold adorns mosque domes and Quran manuscripts.", Positive},
				{"Latin America", "Safe warm alternative to yellow. Evokes the sun without Aztec death associations.", Positive},
			},
			DesignTip: "Gold/Amber is one of the safest luxury colors globally. Pair with black for Middle Eastern premium markets.",
		},
	},
	{
		Range: HueRange{52, 70},
		Analysis: Analysis{
			Family: "Yellow",
			Notes: []Note{
				{"Western", "Sunshine, optimism, taxis, school buses. In Germany, it symbolizes envy.", Positive},
				{"China", "Imperial power. For centuries, only emperors could wear yellow. Represents earth and the center.", Positive},
				{"Japan", "Courage and refinement, linked to the chrysanthemum — the imperial seal since 1357.", Positive},
				{"Middle East", "Happiness, warmth, and divine wisdom.", Positive},
				{"Latin America", "Mourning, death, and sorrow. Linked to the Aztec maize/death cycle.", Warning},
			},
			Warnings:  []string{"Yellow means death and mourning in many Latin American cultures. Use golden or amber tones instead."},
			DesignTip: "For Latin American audiences, warm yellow up to amber/gold. Pure yellow can evoke sorrow connected to Aztec death mythology.",
		},
	},
	{
		Range: HueRange{70, 165},
		Analysis: Analysis{
			Family: "Green",
			Notes: []Note{
				{"Western", "Nature, growth, eco-friendliness, luck (Ireland). Also 'envy' (Shakespeare).", Positive},
				{"China", "Growth and harmony in Wu Xing. But a 'green hat' means spousal infidelity — a severe taboo.", Warning},
				{"Japan", "Vitality, youth, and the eternal cycle of nature. Deeply tied to Shinto.", Positive},
				{"Middle East", "The holiest color in Islam. Symbolizes paradise, the Prophet, and spiritual peace.", Positive},
				{"Latin America", "Independence in Mexico. But in Amazonian regions, it symbolizes disease and death.", Neutral},
			},
			Warnings: []string{
				"Never use green on men's headwear for the Chinese market — it implies the wearer's spouse is unfaithful.",
				"In Middle Eastern design, never place green or Arabic calligraphy on floors, doormats, or footwear — it's considered deeply disrespectful.",
			},
			DesignTip: "Green is the ultimate 'trust' color for Middle Eastern audiences. For Chinese male-targeted products, avoid green near the head/hat area.",
		},
	},
	{
		Range: HueRange{165, 210},
		Analysis: Analysis{
			Family: "Cyan / Teal",
			Notes: []Note{
				{"Western", "Refreshment, innovation, and modern technology.", Positive},
				{"East Asia", "Historically part of 'Ao' (blue-green) in Japan — signifying calm and the natural world.", Positive},
				{"Middle East", "Combines the spiritual depth of blue with the life-giving force of green.", Positive},
				{"Latin America", "Coastal freshness and tropical vibrancy.", Positive},
			},
			DesignTip: "Cyan/Teal is one of the safest globally — minimal negative associations across major cultures.",
		},
	},
	{
		Range: HueRange{210, 260},
		Analysis: Analysis{
			Family: "Blue",
			Notes: []Note{
				{"Western", "Trust, security, corporate authority, masculinity. The default 'safe' corporate color.", Positive},
				{"China", "Calm and immortality. Notably, blue represents femininity — opposite of Western masculinity.", Neutral},
				{"Japan", "The sea, sky, tranquility, and historically the color of common people (Indigo/Ai).", Positive},
				{"Middle East", "Heaven, infinity, divine protection. Used in Nazar (evil eye) amulets against bad spirits.", Positive},
				{"Latin America", "The Virgin Mary's veil — hope, faith, and Catholic devotion.", Positive},
			},
			Warnings:  []string{"Blue's gender association is inverted: masculine in the West, feminine in China."},
			DesignTip: "Blue is the world's most universally trusted color. Latin American finance brands can leverage its 'Virgin Mary' association for deep consumer trust.",
		},
	},
	{
		Range: HueRange{260, 300},
		Analysis: Analysis{
			Family: "Purple",
			Notes: []Note{
				{"Western", "Luxury, mystery, creativity. Historically reserved for royalty due to expensive dye.", Positive},
				{"Japan", "Imperial exclusivity. Banned for commoners under sumptuary laws (604 AD & Edo period).", Positive},
				{"Middle East", "Spirituality and mysticism, especially when paired with blue tones.", Positive},
				{"Latin America", "Death, funerals, and mourning. Wearing purple outside a funeral is considered bad luck in Brazil.", Warning},
				{"Thailand", "The designated mourning color. Worn when grieving.", Warning},
			},
			Warnings: []string{
				"Avoid purple in Brazilian and Thai consumer products — it's the color of death and funerals.",
				"Euro Disney's costly mistake: heavy purple marketing alienated Catholic European audiences who associated it with death.",
			},
			DesignTip: "Safe for luxury in Western and East Asian markets. Completely avoid as a primary brand color for Brazil and Southeast Asia.",
		},
	},
	{
		Range: HueRange{300, 345},
		Analysis: Analysis{
			Family: "Pink",
			Notes: []Note{
				{"Western", "Femininity, nurturing, romance. Pre-1920s it was considered a masculine color.", Positive},
				{"Japan", "Cherry blossoms (Sakura) — spring, renewal, the beauty of transience (mono no aware).", Positive},
				{"East Asia", "Generally associated with romance and marriage.", Positive},
				{"Middle East", "Largely neutral. Can represent softness and tenderness.", Neutral},
			},
			DesignTip: "Relatively safe globally. In Japan, deeper pink (Sakura) tones evoke national pride and seasonal beauty.",
		},
	},
}

var whiteCulture = Analysis{
	Family: "White",
	Notes: []Note{
		{"Western", "Purity, weddings, innocence. Set by Queen Victoria's 1840 white wedding dress tradition.", Positive},
		{"China", "Death, funerals, mourning. The traditional mourning color — never use for weddings or celebrations.", Warning},
		{"Japan", "Shinto divine purity, truth, and humility. White sand in temples symbolizes sacred ground.", Positive},
		{"Middle East", "Purity and rebirth. Worn during Hajj pilgrimage (ihram) to symbolize spiritual cleansing.", Positive},
		{"Latin America", "Angels, good health, and purity. Paired with blue, it represents the Virgin Mary.", Positive},
	},
	Warnings:  []string{"White packaging for gifts, weddings, or food in East Asia can evoke death and funerals. Use red or gold instead."},
	DesignTip: "For East Asian markets, never use pure white packaging for celebration products. Add warm accents (gold, red) to shift the association.",
}

var blackCulture = Analysis{
	Family: "Black",
	Notes: []Note{
		{"Western", "Sophistication, luxury, elegance, power. Also mourning (funerals).", Neutral},
		{"China", "Water element — depth, wisdom, authority, and adaptive power.", Positive},
		{"Japan", "Formality, masculinity, and elegance. Standard for ceremonial and business attire.", Positive},
		{"Middle East", "Authority, dignity, modesty. The Abaya communicates 'I am present but not displayed.'", Positive},
		{"Latin America", "Formality and mourning, similar to Western associations.", Neutral},
	},
	DesignTip: "Black is universally safe for luxury positioning. Pair with gold for Middle Eastern and East Asian premium markets.",
}

var greyCulture = Analysis{
	Family: "Grey",
	Notes: []Note{
		{"Western", "Professionalism, neutrality, and modern minimalism.", Neutral},
		{"East Asia", "Humble and practical. Japan has poetic grey variants like 'cherry blossom mouse' (sakuranezumi).", Neutral},
		{"Middle East", "Neutral and modern. Safe for corporate and tech interfaces.", Neutral},
		{"Latin America", "Generally neutral — professionalism and industry.", Neutral},
	},
	DesignTip: "Grey is globally neutral and safe. Excellent as a foundation that lets culturally resonant accent colors shine.",
}
