package model

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Catalog is the seeded script catalog.
func Catalog() []Script {
	return []Script{
		{
			ID:          1,
			Title:       "Classic Traditional Wedding Ceremony",
			Description: "A timeless script perfect for traditional Christian weddings with beautiful, meaningful vows.",
			Price:       price("29.99"),
			Rating:      4.8,
			Reviews:     127,
			Category:    "Christian",
			Type:        "Wedding",
			Language:    "English",
			Author:      "Rev. Sarah Johnson",
			Tags:        []string{"Traditional", "Christian", "Formal"},
			IsPopular:   true,
			PreviewContent: `Opening Words:

Dearly beloved, we are gathered here today in the sight of God and in the presence of family and friends to join together this man and this woman in holy matrimony, which is an honorable estate, instituted by God, and signifying the mystical union between Christ and His Church.

Declaration of Intent:

[Partner 1], do you take [Partner 2] to be your lawfully wedded wife/husband, to have and to hold from this day forward, for better, for worse, for richer, for poorer, in sickness and in health, to love and to cherish till death do you part?

Exchange of Vows:

I, [Partner 1], take you, [Partner 2], to be my wedded wife/husband, to have and to hold from this day forward, for better, for worse, for richer, for poorer, in sickness and in health, to love and to cherish, till death us do part, according to God's holy ordinance.

Ring Exchange:

This ring is a symbol of my love and faithfulness. As I place it on your finger, I commit my heart and soul to you.

Blessing:

May the Lord bless you and keep you. May the Lord make His face shine upon you and be gracious to you. May the Lord turn His face toward you and give you peace.`,
		},
		{
			ID:          2,
			Title:       "Ceremonia de Boda Católica Tradicional",
			Description: "Script tradicional en español para bodas católicas con lecturas bíblicas y bendiciones.",
			Price:       price("34.99"),
			Rating:      4.9,
			Reviews:     89,
			Category:    "Catholic",
			Type:        "Wedding",
			Language:    "Spanish",
			Author:      "Padre Miguel Rodriguez",
			Tags:        []string{"Católica", "Tradicional", "Español"},
			IsPopular:   true,
			PreviewContent: `Palabras de Apertura:

Queridos hermanos, nos hemos reunido aquí hoy ante Dios y en presencia de la familia y amigos para unir a este hombre y esta mujer en santo matrimonio, que es un sacramento instituido por Dios.

Lecturas Bíblicas:

"El amor es paciente, es bondadoso. El amor no es envidioso ni jactancioso ni orgulloso. No se comporta con rudeza, no es egoísta, no se enoja fácilmente, no guarda rencor." - 1 Corintios 13:4-5

Intercambio de Consentimiento:

[Pareja 1], ¿aceptas a [Pareja 2] como tu esposa/esposo y prometes serle fiel en la prosperidad y en la adversidad, en la salud y en la enfermedad, y así amarla y respetarla todos los días de tu vida?

Intercambio de Anillos:

Este anillo es símbolo de mi amor y fidelidad. Al colocarlo en tu dedo, te entrego mi corazón y mi vida.

Bendición Final:

Que Dios Todopoderoso los bendiga: El Padre, el Hijo y el Espíritu Santo. Amén.`,
		},
		{
			ID:          3,
			Title:       "Modern Secular Wedding Script",
			Description: "Contemporary non-religious ceremony script focusing on love, commitment, and personal vows.",
			Price:       price("24.99"),
			Rating:      4.7,
			Reviews:     203,
			Category:    "Secular",
			Type:        "Wedding",
			Language:    "English",
			Author:      "Jennifer Park",
			Tags:        []string{"Modern", "Secular", "Personal"},
			IsPopular:   true,
			PreviewContent: `Welcome:

Welcome, everyone. We are gathered here today to celebrate the love and commitment between [Partner 1] and [Partner 2]. This is a day of great joy, as two people who have chosen to walk through life together make that commitment official.

Reading on Love:

"Love is friendship that has caught fire. It is quiet understanding, mutual confidence, sharing and forgiving. It is loyalty through good and bad times."

Personal Vows:

[Partner 1], please share your vows with [Partner 2].

[Partner 2], please share your vows with [Partner 1].

Ring Exchange:

These rings are a symbol of the unbroken circle of love. As you wear these rings, may they remind you of the promises you make here today.

Pronouncement:

By the power vested in me, I now pronounce you married partners for life. You may seal your commitment with a kiss!`,
		},
		{
			ID:          4,
			Title:       "Quinceañera Celebration Script",
			Description: "Beautiful coming-of-age ceremony script with traditional blessings and modern touches.",
			Price:       price("19.99"),
			Rating:      4.6,
			Reviews:     76,
			Category:    "Cultural",
			Type:        "Quinceañera",
			Language:    "Spanish",
			Author:      "Maria Elena Gonzalez",
			Tags:        []string{"Quinceañera", "Cultural", "Bilingual"},
			PreviewContent: `Bienvenida:

Buenas tardes familia y amigos. Hoy celebramos un momento muy especial en la vida de nuestra querida quinceañera. Este día marca su transición de niña a mujer joven.

Ceremonia de la Corona:

Esta corona simboliza la responsabilidad y el honor que vienes con la madurez. Que siempre recuerdes que eres hija de Dios.

Ceremonia del Último Muñeco:

Este muñeco representa tu niñez. Al dejarlo, abrazas las responsabilidades de ser una joven mujer.

Bendición:

Que Dios te bendiga en este nuevo camino. Que siempre camines con fe, esperanza y amor.`,
		},
		{
			ID:          5,
			Title:       "Celebration of Life Memorial",
			Description: "Uplifting memorial service script that celebrates a life well-lived with dignity and hope.",
			Price:       price("22.99"),
			Rating:      4.9,
			Reviews:     145,
			Category:    "Memorial",
			Type:        "Celebration of Life",
			Language:    "English",
			Author:      "Dr. Robert Chen",
			Tags:        []string{"Memorial", "Uplifting", "Celebration"},
			IsPopular:   true,
			PreviewContent: `Opening:

We gather today to celebrate the remarkable life of [Name], to honor their memory, and to find comfort in the legacy they leave behind.

Remembrance:

[Name] touched so many lives with their kindness, generosity, and love. Today we remember not how they died, but how they lived.

Reading:

"Do not stand at my grave and weep. I am not there; I do not sleep. I am a thousand winds that blow. I am the diamond glints on snow."

Celebration of Life:

Let us share stories and memories that bring smiles to our faces and warmth to our hearts.

Closing:

Though we will miss [Name] deeply, we find peace in knowing that their spirit lives on in each of us.`,
		},
		{
			ID:          6,
			Title:       "Jewish Wedding Ceremony",
			Description: "Traditional Jewish wedding script with chuppah ceremony, ring exchange, and breaking of glass.",
			Price:       price("39.99"),
			Rating:      4.8,
			Reviews:     94,
			Category:    "Jewish",
			Type:        "Wedding",
			Language:    "English",
			Author:      "Rabbi David Goldstein",
			Tags:        []string{"Jewish", "Traditional", "Chuppah"},
			PreviewContent: `Processional and Welcoming:

Baruch haba b'shem Adonai - Blessed are you who come in the name of the Lord. We welcome you under the chuppah.

Seven Blessings (Sheva Brachot):

Blessed are You, Lord our God, King of the universe, who created joy and gladness, groom and bride, mirth, glad song, pleasure, delight, love, brotherhood, peace, and companionship.

Ring Exchange:

Behold, you are consecrated to me with this ring according to the law of Moses and Israel.

Breaking of the Glass:

This act reminds us that even in our joy, we remember the destruction of the Temple and the fragility of relationships.

Mazel Tov!`,
		},
		{
			ID:          7,
			Title:       "ਪੰਜਾਬੀ ਵਿਆਹ ਦੀ ਰਸਮ",
			Description: "Traditional Punjabi Sikh wedding ceremony script with Anand Karaj rituals and hymns.",
			Price:       price("32.99"),
			Rating:      4.7,
			Reviews:     64,
			Category:    "Cultural",
			Type:        "Wedding",
			Language:    "Punjabi",
			Author:      "Giani Harpreet Singh",
			Tags:        []string{"Sikh", "Punjabi", "Traditional"},
			PreviewContent: `Anand Karaj Ceremony:

The Anand Karaj is the Sikh marriage ceremony, meaning "Blissful Union." The couple will walk around the Guru Granth Sahib four times.

Laavan - First Round:

In the first round, the Lord sets out His Instructions for performing the daily duties of married life.

Laavan - Second Round:

In the second round, the couple meets the True Guru, the Primal Being.

Ardas (Prayer):

We seek the blessings of Waheguru for this union. May this couple walk together on the path of Dharma.`,
		},
		{
			ID:          8,
			Title:       "हिंदू विवाह संस्कार",
			Description: "Complete Hindu wedding ceremony script with Sanskrit mantras and traditional rituals.",
			Price:       price("36.99"),
			Rating:      4.8,
			Reviews:     98,
			Category:    "Hindu",
			Type:        "Wedding",
			Language:    "Hindi",
			Author:      "Pandit Raj Kumar Sharma",
			Tags:        []string{"Hindu", "Sanskrit", "Traditional"},
			IsPopular:   true,
			PreviewContent: `Saptapadi (Seven Steps):

साथ चलें सात कदम, जीवन भर का साथ निभाएं।

पहला कदम: भोजन के लिए
दूसरा कदम: शक्ति के लिए
तीसरा कदम: धन के लिए
चौथा कदम: सुख के लिए
पांचवां कदम: संतान के लिए
छठा कदम: ऋतुओं के लिए
सातवां कदम: मित्रता के लिए

Mangal Sutra:

यह मंगल सूत्र हमारे पवित्र बंधन का प्रतीक है।

Agni Parikrama:

अग्नि को साक्षी मानकर, हम सात फेरे लेते हैं।`,
		},
		{
			ID:          9,
			Title:       "Inclusive Love Celebration",
			Description: "Beautiful LGBTQ+ wedding ceremony script celebrating love in all its forms with affirming language.",
			Price:       price("32.99"),
			Rating:      4.9,
			Reviews:     156,
			Category:    "Secular",
			Type:        "LGBTQ",
			Language:    "English",
			Author:      "Rev. Alex Rivera",
			Tags:        []string{"LGBTQ", "Inclusive", "Modern"},
			IsPopular:   true,
			PreviewContent: `Welcome and Celebration:

Welcome to this joyous celebration of love! Today we witness the union of two beautiful souls who have chosen to share their lives together.

Affirming Love:

Love is love. Your love is valid, beautiful, and worthy of celebration. Today we honor your commitment to each other.

Personal Vows:

[Partner 1] and [Partner 2], please share the vows you have written for each other.

Unity Ceremony:

As you blend these waters together, so too do you blend your lives, your hopes, and your dreams.

Pronouncement:

By the power of your love and the commitment you make here today, I pronounce you married! You may kiss!`,
		},
		{
			ID:          10,
			Title:       "Same-Sex Marriage Ceremony",
			Description: "Heartfelt same-sex wedding script with personalized vows and inclusive traditions.",
			Price:       price("29.99"),
			Rating:      4.8,
			Reviews:     89,
			Category:    "Secular",
			Type:        "LGBTQ",
			Language:    "English",
			Author:      "Dr. Jordan Kim",
			Tags:        []string{"Same-Sex", "Personal", "Affirming"},
			PreviewContent: `Opening Words:

We come together today to witness and celebrate the marriage of [Partner 1] and [Partner 2]. Your love story is an inspiration to all of us.

Reading on Partnership:

"A successful marriage requires falling in love many times, always with the same person."

Declaration of Intent:

[Partner 1], do you take [Partner 2] to be your spouse, to love and cherish, through all the days of your lives?

Personal Vows:

Please share the promises you make to each other today.

Ring Ceremony:

These rings represent your eternal love and commitment. Wear them as a symbol of the promises made here today.

Pronouncement:

I now pronounce you married partners in life!`,
		},
		{
			ID:          11,
			Title:       "Ceremonia LGBTQ+ Bilingüe",
			Description: "Bilingual LGBTQ+ wedding ceremony celebrating diversity and love in Spanish and English.",
			Price:       price("34.99"),
			Rating:      4.7,
			Reviews:     72,
			Category:    "Cultural",
			Type:        "LGBTQ",
			Language:    "Spanish",
			Author:      "Rev. Maria Santos",
			Tags:        []string{"LGBTQ", "Bilingüe", "Inclusivo"},
			PreviewContent: `Palabras de Apertura / Opening Words:

Bienvenidos a todos. Hoy celebramos el amor entre [Pareja 1] y [Pareja 2].
Welcome everyone. Today we celebrate the love between [Partner 1] and [Partner 2].

Lectura sobre el Amor / Reading on Love:

El amor es paciente, el amor es bondadoso. Love is patient, love is kind.

Intercambio de Votos / Exchange of Vows:

Por favor, compartan sus promesas. Please share your promises.

Ceremonia de los Anillos / Ring Ceremony:

Estos anillos simbolizan su amor eterno. These rings symbolize your eternal love.

Pronunciación / Pronouncement:

¡Los declaro casados! I now pronounce you married!`,
		},
	}
}
