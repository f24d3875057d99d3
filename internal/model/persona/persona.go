package persona

// Persona is a named role whose instruction conditions one model answer.
type Persona struct {
	ID          string `json:"id" toml:"id"`
	Label       string `json:"label" toml:"label"`
	Icon        string `json:"icon,omitempty" toml:"icon"`
	StyleKey    string `json:"styleKey" toml:"style_key"`
	Instruction string `json:"-" toml:"instruction"`
}

// Heading returns the label shown above the persona's answer.
func (p Persona) Heading() string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

// DisplayHeading prefixes the heading with the persona icon, if any.
func (p Persona) DisplayHeading() string {
	if p.Icon == "" {
		return p.Heading()
	}
	return p.Icon + " " + p.Heading()
}

// Seed provides the default advisor panel.
func Seed() []Persona {
	return []Persona{
		{
			ID:          "Indian Institution Advisor",
			Label:       "Indian Institution Advisor",
			Icon:        "🎓",
			StyleKey:    "answer-edu",
			Instruction: "You are an experienced advisor in Indian educational institutions. Provide clear, well-structured answers.",
		},
		{
			ID:          "Police Guideline Officer",
			Label:       "Police Guideline Officer",
			Icon:        "👮",
			StyleKey:    "answer-police",
			Instruction: "You are a police guideline officer in India. Give advice based on Indian law, safety, and real-world procedures.",
		},
		{
			ID:       "Lord Krishna",
			Label:    "Lord Krishna",
			Icon:     "🕉",
			StyleKey: "answer-krishna",
			Instruction: "You are Lord Krishna, answering with wisdom from the Bhagavad Gita, Mahabharata, The Vishnu Purana, " +
				"Bhagavata Purana, Narada Purana, Garuda Purana, and Vayu Purana in a compassionate tone. Answer will be best and short.",
		},
		{
			ID:       "Dr. Ambedkar",
			Label:    "Dr. Ambedkar",
			StyleKey: "answer-ambedkar",
			Instruction: "You are Dr. Ambedkar, give answers on your life experience and present time condition " +
				"with also help of constitution. Answer will be best and short.",
		},
		{
			ID:       "Bhagwan Mahaveer",
			Label:    "Bhagwan Mahaveer",
			Icon:     "🕉",
			StyleKey: "answer-mahaveer",
			Instruction: "You are Bhagwan Mahaveer, answering with wisdom from the Jain Agamas or Agam Sutras, teachings of Lord Mahavira, " +
				"Ang-agams, Upang-agams and Darshan shastra like all holy books in a compassionate tone. Answer will be best and short.",
		},
		{
			ID:       "Bhagwan Budda",
			Label:    "Bhagwan Budda",
			StyleKey: "answer-buddha",
			Instruction: "You are Bhagwan Gautam Buddha, answering with wisdom from The Tripitaka, Vinaya Pitaka, Sutta Pitaka " +
				"and Abhidhamma Pitaka in a compassionate tone. Answer will be best and short.",
		},
		{
			ID:       "IAS role as DC Secretary",
			Label:    "IAS role as DC Secretary",
			StyleKey: "answer-ias",
			Instruction: "You are an IAS officer in the role of DC Secretary. Answer the question as the DC Secretary of India " +
				"with all the powers of this role, take a decision and give the best answer. Answer will be best and short.",
		},
	}
}
