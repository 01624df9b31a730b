package taxonomy

import "regexp"

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

func res(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Default returns the built-in taxonomy. Declaration order in every table
// is significant: it breaks ranking ties and orders flattened output.
func Default() *Taxonomy {
	return &Taxonomy{
		Abbreviations: []string{
			"Mr.", "Mrs.", "Ms.", "Dr.", "St.", "vs.", "etc.", "e.g.", "i.e.",
			"a.m.", "p.m.", "U.S.", "No.", "approx.",
		},

		Roles: []RolePatterns{
			{Role: RolePainAgitation, Patterns: res(
				`(?i)\btired of\b`,
				`(?i)\b(?:exhausted|drained|burn(?:ed|t)[ -]?out)\b`,
				`(?i)\bstruggl(?:e|es|ed|ing)\b`,
				`(?i)\bcan't (?:sleep|focus|concentrate|keep up|lose)\b`,
				`(?i)\b(?:frustrat|fed up)`,
				`(?i)\bsick (?:of|and tired)\b`,
				`(?i)\bwak(?:e|es|ing) up (?:tired|groggy|exhausted)\b`,
				`(?i)\bdragging (?:yourself|through)\b`,
			)},
			{Role: RoleRootCause, Patterns: res(
				`(?i)\broot cause\b`,
				`(?i)\breal (?:reason|problem|culprit)\b`,
				`(?i)\b(?:caused by|the culprit|to blame)\b`,
				`(?i)\bdeficien(?:t|cy|cies)\b`,
				`(?i)\bbecause your (?:body|brain|gut)\b`,
				`(?i)\bunderlying (?:issue|problem|cause)\b`,
				`(?i)\bhere's why\b`,
				`(?i)\bit's not your fault\b`,
			)},
			{Role: RoleFailedSolutions, Patterns: res(
				`(?i)\btried everything\b`,
				`(?i)\bnothing (?:worked|works|helped|helps)\b`,
				`(?i)\bother (?:products|supplements|pills|brands) (?:just |simply )?(?:don't|didn't|won't|fail)`,
				`(?i)\b(?:didn't|don't|doesn't) (?:work|last|stick)\b`,
				`(?i)\bquick fix(?:es)?\b`,
				`(?i)\bband-?aid\b`,
				`(?i)\bwasted (?:money|years|time)\b`,
			)},
			{Role: RoleMechanismHow, Patterns: res(
				`(?i)\bworks by\b`,
				`(?i)\bsynergistic\b`,
				`(?i)\b(?:formula|blend) (?:combines|pairs|delivers|targets)\b`,
				`(?i)\b(?:approach|method|system) (?:pairs|combines|targets)\b`,
				`(?i)\b(?:absorb(?:s|ed|ption)?|bioavailab)`,
				`(?i)\bclinically (?:dosed|studied|proven)\b`,
				`(?i)\btargets? the\b`,
				`(?i)\bthat's why we\b`,
			)},
			{Role: RoleProductDetail, Patterns: res(
				`(?i)\b\d+\s?(?:mg|mcg|iu)\b`,
				`(?i)\b(?:capsules?|gummies|servings?|scoops?)\b`,
				`(?i)\bingredients?\b`,
				`(?i)\bcontains\b`,
				`(?i)\bper (?:day|serving|bottle)\b`,
				`(?i)\beach bottle\b`,
			)},
			{Role: RoleOutcomePromise, Patterns: res(
				`(?i)\byou'll (?:feel|wake|notice|finally)\b`,
				`(?i)\bimagine (?:waking|feeling|having)\b`,
				`(?i)\bfinally (?:feel|sleep|get)\b`,
				`(?i)\bwithin (?:days|weeks|a week|30 days)\b`,
				`(?i)\bwake up (?:refreshed|energized|rested)\b`,
				`(?i)\bfeel like yourself again\b`,
			)},
			{Role: RoleSocialProof, Patterns: res(
				`(?i)\b\d[\d,]*\+? (?:customers|reviews|people|women|men)\b`,
				`(?i)\b(?:5-star|five-star)\b`,
				`(?i)\btestimonial`,
				`(?i)\brated\b`,
				`(?i)\btrusted by\b`,
				`(?i)"[^"]{10,}"`,
			)},
			{Role: RoleCTA, Patterns: res(
				`(?i)\b(?:shop|buy|order) (?:now|today)\b`,
				`(?i)\b(?:click|tap) (?:below|here|the link)\b`,
				`(?i)\bget yours\b`,
				`(?i)\brisk-?free\b`,
				`(?i)\b(?:use )?code \w+\b`,
				`(?i)\b\d+% off\b`,
				`(?i)\bfree shipping\b`,
			)},
		},

		PainCategories: []PainCategory{
			{Key: "energy_fatigue", Label: "Fatigue and low energy",
				Pattern: re(`(?i)\b(?:fatigued?|exhaust(?:ed|ion)|(?:low|no) energy|drained|sluggish|burn(?:ed|t)[ -]?out|afternoon crash(?:es)?|running on empty)\b`)},
			{Key: "sleep", Label: "Poor sleep",
				Pattern: re(`(?i)\b(?:insomnia|can't (?:fall |stay )?(?:a)?sleep|trouble sleeping|poor sleep|toss(?:ing)? and turn(?:ing)?|wak(?:e|ing) up (?:tired|groggy|at 3)|restless nights?|lying awake)\b`)},
			{Key: "cognitive", Label: "Brain fog and poor focus",
				Pattern: re(`(?i)\b(?:brain fog|forgetful(?:ness)?|can't (?:focus|concentrate)|poor (?:memory|concentration|focus)|lose (?:my|your) train of thought|mental fatigue)\b`)},
			{Key: "stress_mood", Label: "Stress and low mood",
				Pattern: re(`(?i)\b(?:stressed(?: out)?|anxious|anxiety|overwhelmed|irritab(?:le|ility)|mood swings?|on edge|snapping at)\b`)},
			{Key: "physical", Label: "Aches and physical discomfort",
				Pattern: re(`(?i)\b(?:joint pain|sore (?:joints|muscles|back)|aches? and pains?|stiff(?:ness)?|headaches?|migraines?|inflammation)\b`)},
			{Key: "digestive", Label: "Digestive discomfort",
				Pattern: re(`(?i)\b(?:bloat(?:ed|ing)?|constipat(?:ed|ion)|indigestion|gut (?:issues|problems|health struggles)|upset stomach|heartburn)\b`)},
			{Key: "appearance", Label: "Appearance concerns",
				Pattern: re(`(?i)\b(?:dull skin|wrinkles?|fine lines|thinning hair|weight gain|belly fat|dark circles|crepey skin|puffy face)\b`)},
			{Key: "meta_frustration", Label: "Frustration with failed solutions",
				Pattern: re(`(?i)\b(?:tried everything|nothing (?:works|worked|helps|helped)|given up|lost hope|wasted money|another (?:pill|product) that)\b`)},
		},

		Villains: []VillainType{
			{Key: "industry", Label: "Industry shortcuts", Patterns: res(
				`(?i)\b(?:big pharma|the (?:supplement |wellness )?industry)\b`,
				`(?i)\b(?:companies|brands) (?:don't|won't|would rather)\b`,
				`(?i)\bthey don't want you to know\b`,
				`(?i)\bmass[- ]?produced\b`,
				`(?i)\b(?:cheap fillers|cut(?:s|ting)? corners)\b`,
			)},
			{Key: "hidden_deficiency", Label: "A hidden deficiency", Patterns: res(
				`(?i)\bdeficien(?:t|cy|cies)\b`,
				`(?i)\byour body (?:lacks|is missing|can't (?:make|produce))\b`,
				`(?i)\bdepleted\b`,
				`(?i)\bmost (?:people|adults|women|men) (?:are low|lack|don't get enough)\b`,
				`(?i)\bwithout (?:you )?(?:even )?(?:knowing|realizing)\b`,
			)},
			{Key: "environment", Label: "Modern life and environment", Patterns: res(
				`(?i)\bmodern (?:diet|life(?:style)?|food|world)\b`,
				`(?i)\bprocessed foods?\b`,
				`(?i)\bsoil depletion\b`,
				`(?i)\b(?:screens?|blue light|doom-?scrolling)\b`,
				`(?i)\bchronic stress\b`,
			)},
			{Key: "product_failure", Label: "Products that fall short", Patterns: res(
				`(?i)\bother (?:products|brands|supplements|sleep aids)\b`,
				`(?i)\b(?:don't absorb|poor(?:ly)? absorb(?:ed|ption)?)\b`,
				`(?i)\b(?:underdosed|fairy[- ]?dust(?:ing)?|pixie dust)\b`,
				`(?i)\b(?:band-?aid|quick fix(?:es)?|masks? the (?:problem|symptoms))\b`,
			)},
		},

		Desires: []DesireCategory{
			{Key: "energy", Label: "All-day energy and vitality",
				Pattern: re(`(?i)\b(?:energy|energized|vitality|stamina)\b`)},
			{Key: "sleep", Label: "Sleeping well and waking rested",
				Pattern: re(`(?i)\b(?:sleep(?:ing)?|asleep|rested|restful|well-rested)\b`)},
			{Key: "focus", Label: "Mental clarity and focus",
				Pattern: re(`(?i)\b(?:focus(?:ed)?|clarity|sharp(?:er)?|concentration)\b`)},
			{Key: "health", Label: "Long-term health and longevity",
				Pattern: re(`(?i)\b(?:health(?:y|ier)?|longevity|immune|wellness)\b`)},
			{Key: "performance", Label: "Peak physical performance",
				Pattern: re(`(?i)\b(?:performance|stronger|recovery|endurance|gains)\b`)},
			{Key: "trust", Label: "A product they can finally trust",
				Pattern: re(`(?i)\b(?:trust(?:ed|worthy)?|transparent|honest|no gimmicks)\b`)},
			{Key: "family", Label: "Showing up for family",
				Pattern: re(`(?i)\b(?:family|kids|children|grandkids|husband|wife)\b`)},
		},

		Awareness: []AwarenessStage{
			{Key: "unaware", Patterns: res(
				`(?i)\bdid you know\b`,
				`(?i)\b(?:scientists|researchers) (?:just )?discovered\b`,
				`(?i)\b(?:strange|weird|surprising) (?:reason|fact|truth)\b`,
				`(?i)\bwhat nobody tells you\b`,
				`(?i)\bmost people have no idea\b`,
			)},
			{Key: "problem_aware", Patterns: res(
				`(?i)\btired of\b`,
				`(?i)\bstruggling with\b`,
				`(?i)\bsick of\b`,
				`(?i)\bif you (?:can't|keep|wake)\b`,
				`(?i)\bwhy you (?:can't|keep|still)\b`,
				`(?i)\bsound familiar\b`,
			)},
			{Key: "solution_aware", Patterns: res(
				`(?i)\bthere's a better way\b`,
				`(?i)\bwhat actually works\b`,
				`(?i)\bthe (?:answer|solution) (?:is(?:n't)?|lies)\b`,
				`(?i)\bnot all \w+ are (?:created )?equal\b`,
				`(?i)\bbefore you (?:buy|try) another\b`,
			)},
			{Key: "product_aware", Patterns: res(
				`(?i)\bunlike other\b`,
				`(?i)\bvs\.?\b`,
				`(?i)\bour (?:formula|blend|ingredients)\b`,
				`(?i)\bcompared to\b`,
				`(?i)\bwhat makes \w+ different\b`,
			)},
			{Key: "most_aware", Patterns: res(
				`(?i)\b\d+% off\b`,
				`(?i)\b(?:sale|discount)\b`,
				`(?i)\blimited time\b`,
				`(?i)\buse code\b`,
				`(?i)\bfree shipping\b`,
				`(?i)\bmoney-?back\b`,
				`(?i)\b(?:back in stock|restocked)\b`,
			)},
		},

		Strategies: []Strategy{
			{Key: "new_mechanism", Patterns: res(
				`(?i)\b(?:breakthrough|patented|proprietary)\b`,
				`(?i)\b(?:unique|novel|new) (?:mechanism|approach|delivery)\b`,
				`(?i)\bfirst (?:of its kind|ever)\b`,
				`(?i)\bworks differently\b`,
				`(?i)\bsynergistic\b`,
			)},
			{Key: "new_information", Patterns: res(
				`(?i)\bnew (?:research|study|science)\b`,
				`(?i)\b(?:study|studies) (?:show|found|revealed)\b`,
				`(?i)\b(?:scientists|researchers) (?:found|discovered|revealed)\b`,
				`(?i)\bdata shows\b`,
				`(?i)\brecently (?:discovered|published)\b`,
			)},
			{Key: "new_identity", Patterns: res(
				`(?i)\bfor (?:people|women|men) who\b`,
				`(?i)\bjoin (?:the )?\d[\d,]*\+?\b`,
				`(?i)\bpeople like (?:you|us)\b`,
				`(?i)\b(?:movement|community|tribe)\b`,
				`(?i)\byou're not the (?:type|kind)\b`,
			)},
		},

		DeliveryGroups: []SignalGroup{
			{Key: "ingredients", Pattern: re(`(?i)\b(?:ashwagandha|magnesium(?: glycinate| threonate)?|l-theanine|melatonin|rhodiola|turmeric|curcumin|omega-3s?|zinc|vitamin (?:a|b\d{0,2}|c|d3?|e|k2?)|collagen|probiotics?|apigenin|glycine)\b`)},
			{Key: "dosage", Pattern: re(`(?i)\b\d+(?:,\d{3})?\s?(?:mg|mcg|iu|grams?|billion cfu)\b`)},
			{Key: "forms", Pattern: re(`(?i)\b(?:capsules?|gummies|powder|softgels?|tablets?|drops|tincture|drink mix)\b`)},
			{Key: "certifications", Pattern: re(`(?i)\b(?:third[- ]party tested|gmp[- ]certified|nsf[- ]certified|non[- ]gmo|fda[- ]registered|informed[- ]sport|lab[- ]tested)\b`)},
			{Key: "purity", Pattern: re(`(?i)\b(?:no (?:fillers|additives|artificial \w+)|free (?:of|from)|small[- ]batch|tested for (?:heavy metals|purity)|zero sugar)\b`)},
			{Key: "sourcing", Pattern: re(`(?i)\b(?:made in the usa|sourced from|sustainably (?:sourced|harvested)|manufactured in|farm[- ]to)\b`)},
		},

		Styles: []CreativeStyle{
			{Name: "Testimonial", Pattern: re(`(?i)(?:\bi (?:was|had|couldn't|never|struggled)\b|\bmy (?:husband|wife|doctor) (?:noticed|asked|couldn't believe)\b|\bchanged my life\b)`)},
			{Name: "Founder/Authority", Pattern: re(`(?i)(?:\bas a (?:doctor|nurse|nutritionist|trainer|founder)\b|\bi (?:created|formulated|founded)\b|\bour founder\b|\bdr\. \w+\b)`)},
			{Name: "Science/Data", Pattern: re(`(?i)(?:\bstud(?:y|ies)\b|\bclinical(?:ly)?\b|\bresearch(?:ers)? (?:show|shows|found)\b|\b\d+% of (?:participants|people|users)\b|\bpeer[- ]reviewed\b)`)},
			{Name: "Comparison", Pattern: re(`(?i)(?:\bunlike\b|\bvs\.?\b|\bcompared to\b|\bother (?:brands|products) (?:use|rely|settle)\b|\bthe difference\b)`)},
			{Name: "UGC/Authentic", Pattern: re(`(?i)(?:\bokay so\b|\byou guys\b|\bnot sponsored\b|\bhonest review\b|\bpov:\b|\bi saw this on\b|\bran to (?:buy|get)\b)`)},
			{Name: "Q&A/Objection", Pattern: re(`(?i)(?:\bq:\b|\byou might be wondering\b|\bfrequently asked\b|\bis it safe\b|\bdoes it (?:really |actually )?work\b|\byou(?:'re| are) probably thinking\b)`)},
		},

		Demographics: []Demographic{
			{Class: ClassRole, Label: "parents", Pattern: re(`(?i)\b(?:moms?|dads?|parents?|mother(?:s|hood)?|father(?:s|hood)?)\b`)},
			{Class: ClassRole, Label: "working professionals", Pattern: re(`(?i)\b(?:professionals?|entrepreneurs?|executives?|9[- ]to[- ]5|career)\b`)},
			{Class: ClassAge, Label: "%s-year-old", Capture: true, Pattern: re(`(?i)\b(\d{2})[- ]year[- ]old`)},
			{Class: ClassAge, Label: "adults over %s", Capture: true, Pattern: re(`(?i)\bover (\d{2})\b`)},
			{Class: ClassGender, Label: "women", Pattern: re(`(?i)\bwom[ae]n\b`)},
			{Class: ClassGender, Label: "men", Pattern: re(`(?i)\bmen\b`)},
			{Class: ClassRole, Label: "fitness enthusiasts", Pattern: re(`(?i)\b(?:gym|athletes?|runners?|lifters?|workouts?|training)\b`)},
			{Class: ClassAge, Label: "adults noticing their age", Pattern: re(`(?i)\b(?:aging|getting older|as (?:you|we) age|in (?:your|my) (?:40s|50s|60s|70s))\b`)},
			{Class: ClassRole, Label: "healthcare and shift workers", Pattern: re(`(?i)\b(?:nurses?|doctors?|shift workers?|night shifts?|first responders?)\b`)},
			{Class: ClassSituational, Label: "busy", Pattern: re(`(?i)\b(?:busy|no time|time[- ](?:crunched|pressed|starved)|always on the go|juggling)\b`)},
			{Class: ClassRole, Label: "students", Pattern: re(`(?i)\b(?:students?|grad school|finals)\b`)},
			{Class: ClassAge, Label: "midlife women", Pattern: re(`(?i)\b(?:menopause|perimenopause|midlife)\b`)},
		},

		Psychographics: []Psychographic{
			{Label: "are skeptical of big claims", Pattern: re(`(?i)\b(?:skeptical|doubted|too good to be true|didn't believe|sounds like hype)\b`)},
			{Label: "have tried everything without results", Pattern: re(`(?i)\b(?:tried everything|tried every \w+|nothing (?:has )?worked)\b`)},
			{Label: "actively optimize their health", Pattern: re(`(?i)\b(?:health[- ]conscious|optimiz(?:e|ed|ing)|biohack(?:er|ing)?|wellness routine|morning routine)\b`)},
			{Label: "read labels and want evidence", Pattern: re(`(?i)\b(?:read the label|check(?:ed)? the ingredients|backed by (?:science|research)|want(?:ed)? proof|do (?:my|your|their) research)\b`)},
			{Label: "act on personal recommendations", Pattern: re(`(?i)\b(?:my (?:friend|sister|mom|doctor|trainer) (?:told|recommended|swears)|word of mouth|recommended (?:it )?to me)\b`)},
		},
	}
}
