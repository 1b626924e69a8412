package catalog

// catalogVersion identifies the question set. Bump when questions,
// weights or risk mappings change.
const catalogVersion = "v1.2.0"

// seedQuestions returns the HIPAA question set.
func seedQuestions() []Question {
	return []Question{
		// Administrative safeguards.
		{
			ID:         "admin_001",
			Category:   CategoryAdministrative,
			Complexity: TierBasic,
			Text:       "Does your organization have a designated HIPAA Security Officer?",
			AnswerType: AnswerYesNo,
			Weight:     5,
			RiskMapping: map[string]RiskDescriptor{
				"yes": {
					RiskScore: 20,
					Rationale: "Having a designated Security Officer is required and significantly reduces risk",
				},
				"no": {
					RiskScore:   95,
					Rationale:   "No Security Officer creates major compliance gap and high audit risk",
					Remediation: "Immediately designate a HIPAA Security Officer",
				},
			},
			HelpText:            "The Security Officer is responsible for developing and implementing security policies and procedures",
			RegulatoryReference: "45 CFR 164.308(a)(2)",
		},
		{
			ID:         "admin_002",
			Category:   CategoryAdministrative,
			Complexity: TierBasic,
			Text:       "How often does your organization conduct HIPAA security training?",
			AnswerType: AnswerSingleChoice,
			Options:    []string{"Never", "Once upon hiring", "Annually", "Semi-annually", "Quarterly"},
			Weight:     4,
			RiskMapping: map[string]RiskDescriptor{
				"Never": {
					RiskScore:   100,
					Rationale:   "No security training creates maximum risk and compliance violation",
					Remediation: "Implement immediate security training program",
				},
				"Once upon hiring": {
					RiskScore:   70,
					Rationale:   "Initial training only is insufficient for ongoing compliance",
					Remediation: "Establish annual refresher training",
				},
				"Annually": {
					RiskScore: 30,
					Rationale: "Annual training meets minimum requirements but could be improved",
				},
				"Semi-annually": {
					RiskScore: 15,
					Rationale: "Semi-annual training demonstrates strong commitment to compliance",
				},
				"Quarterly": {
					RiskScore: 5,
					Rationale: "Quarterly training exceeds requirements and minimizes risk",
				},
			},
			RegulatoryReference: "45 CFR 164.308(a)(5)",
		},
		{
			ID:         "admin_003",
			Category:   CategoryAdministrative,
			Complexity: TierIntermediate,
			Text:       "Which access control procedures does your organization have in place?",
			AnswerType: AnswerMultiChoice,
			Options: []string{
				"Written access authorization procedures",
				"Role-based access controls",
				"Automatic logoff procedures",
				"Regular access reviews and updates",
				"Emergency access procedures",
				"User access monitoring and logging",
			},
			Weight: 4,
			Buckets: []Bucket{
				{Lo: 0, Hi: 1, Risk: RiskDescriptor{
					RiskScore:   90,
					Rationale:   "Minimal access controls create high security risk",
					Remediation: "Implement comprehensive access control procedures",
				}},
				{Lo: 2, Hi: 3, Risk: RiskDescriptor{
					RiskScore:   60,
					Rationale:   "Basic access controls present but significant gaps remain",
					Remediation: "Expand access control procedures",
				}},
				{Lo: 4, Hi: 5, Risk: RiskDescriptor{
					RiskScore: 25,
					Rationale: "Good access controls with minor areas for improvement",
				}},
				{Lo: 6, Hi: 6, Risk: RiskDescriptor{
					RiskScore: 10,
					Rationale: "Comprehensive access controls demonstrate strong security posture",
				}},
			},
			RegulatoryReference: "45 CFR 164.308(a)(4)",
		},
		{
			ID:         "admin_004",
			Category:   CategoryAdministrative,
			Complexity: TierAdvanced,
			Text:       "Describe your incident response procedure for potential PHI breaches",
			AnswerType: AnswerFreeText,
			Weight:     5,
			RiskMapping: map[string]RiskDescriptor{
				"detailed_procedure": {
					RiskScore: 15,
					Rationale: "Comprehensive incident response plan reduces breach impact",
				},
				"basic_procedure": {
					RiskScore: 40,
					Rationale: "Basic procedures present but may lack detail for effective response",
				},
				"no_procedure": {
					RiskScore:   85,
					Rationale:   "No incident response plan creates high risk and compliance violation",
					Remediation: "Develop comprehensive incident response procedures",
				},
			},
			HelpText:            "Include detection, containment, assessment, notification, and remediation steps",
			RegulatoryReference: "45 CFR 164.308(a)(6)",
		},

		// Physical safeguards.
		{
			ID:         "phys_001",
			Category:   CategoryPhysical,
			Complexity: TierBasic,
			Text:       "How do you control physical access to facilities containing PHI?",
			AnswerType: AnswerSingleChoice,
			Options: []string{
				"No specific controls",
				"Locked doors only",
				"Key card access with logging",
				"Biometric access controls",
				"Multi-factor physical authentication",
			},
			Weight: 4,
			RiskMapping: map[string]RiskDescriptor{
				"No specific controls": {
					RiskScore:   95,
					Rationale:   "No physical access controls create severe security vulnerability",
					Remediation: "Implement immediate physical access controls",
				},
				"Locked doors only": {
					RiskScore:   70,
					Rationale:   "Basic physical security insufficient for PHI protection",
					Remediation: "Upgrade to access control system with logging",
				},
				"Key card access with logging": {
					RiskScore: 30,
					Rationale: "Good physical access controls with audit trail",
				},
				"Biometric access controls": {
					RiskScore: 15,
					Rationale: "Strong physical security measures",
				},
				"Multi-factor physical authentication": {
					RiskScore: 5,
					Rationale: "Excellent physical security exceeding requirements",
				},
			},
			RegulatoryReference: "45 CFR 164.310(a)(1)",
		},
		{
			ID:         "phys_002",
			Category:   CategoryPhysical,
			Complexity: TierBasic,
			Text:       "Are workstations positioned to prevent unauthorized viewing of PHI?",
			AnswerType: AnswerYesNo,
			Weight:     3,
			RiskMapping: map[string]RiskDescriptor{
				"yes": {
					RiskScore: 20,
					Rationale: "Proper workstation positioning reduces unauthorized PHI viewing risk",
				},
				"no": {
					RiskScore:   75,
					Rationale:   "Poor workstation positioning creates privacy risk",
					Remediation: "Reposition workstations or install privacy screens",
				},
			},
			RegulatoryReference: "45 CFR 164.310(b)",
		},
		{
			ID:         "phys_003",
			Category:   CategoryPhysical,
			Complexity: TierIntermediate,
			Text:       "What controls are in place for media containing PHI?",
			AnswerType: AnswerMultiChoice,
			Options: []string{
				"Media disposal/reuse procedures",
				"Secure media transport procedures",
				"Media access controls and logging",
				"Backup media encryption",
				"Media sanitization procedures",
				"Chain of custody documentation",
			},
			Weight: 4,
			Buckets: []Bucket{
				{Lo: 0, Hi: 1, Risk: RiskDescriptor{
					RiskScore:   85,
					Rationale:   "Insufficient media controls create high data breach risk",
					Remediation: "Implement comprehensive media control procedures",
				}},
				{Lo: 2, Hi: 3, Risk: RiskDescriptor{
					RiskScore: 55,
					Rationale: "Basic media controls present but gaps remain",
				}},
				{Lo: 4, Hi: 5, Risk: RiskDescriptor{
					RiskScore: 25,
					Rationale: "Good media controls with minor improvements needed",
				}},
				{Lo: 6, Hi: 6, Risk: RiskDescriptor{
					RiskScore: 10,
					Rationale: "Comprehensive media controls demonstrate strong security",
				}},
			},
			RegulatoryReference: "45 CFR 164.310(d)",
		},

		// Technical safeguards.
		{
			ID:         "tech_001",
			Category:   CategoryTechnical,
			Complexity: TierBasic,
			Text:       "Do you use unique user identification for each person accessing PHI?",
			AnswerType: AnswerYesNo,
			Weight:     5,
			RiskMapping: map[string]RiskDescriptor{
				"yes": {
					RiskScore: 15,
					Rationale: "Unique user identification enables proper access control and auditing",
				},
				"no": {
					RiskScore:   90,
					Rationale:   "Shared accounts prevent accountability and audit compliance",
					Remediation: "Implement unique user accounts for all PHI access",
				},
			},
			RegulatoryReference: "45 CFR 164.312(a)(2)(i)",
		},
		{
			ID:         "tech_002",
			Category:   CategoryTechnical,
			Complexity: TierBasic,
			Text:       "What type of encryption do you use for PHI?",
			AnswerType: AnswerSingleChoice,
			Options: []string{
				"No encryption used",
				"Basic password protection",
				"AES-128 encryption",
				"AES-256 encryption",
				"End-to-end encryption with key management",
			},
			Weight: 5,
			RiskMapping: map[string]RiskDescriptor{
				"No encryption used": {
					RiskScore:   100,
					Rationale:   "No encryption creates maximum data breach risk",
					Remediation: "Implement immediate PHI encryption",
				},
				"Basic password protection": {
					RiskScore:   80,
					Rationale:   "Password protection insufficient for PHI security",
					Remediation: "Upgrade to proper encryption standards",
				},
				"AES-128 encryption": {
					RiskScore: 30,
					Rationale: "Good encryption standard with room for improvement",
				},
				"AES-256 encryption": {
					RiskScore: 15,
					Rationale: "Strong encryption standard meeting best practices",
				},
				"End-to-end encryption with key management": {
					RiskScore: 5,
					Rationale: "Excellent encryption implementation exceeding requirements",
				},
			},
			RegulatoryReference: "45 CFR 164.312(a)(2)(iv)",
		},
		{
			ID:         "tech_003",
			Category:   CategoryTechnical,
			Complexity: TierIntermediate,
			Text:       "How often do you review access logs for PHI systems?",
			AnswerType: AnswerSingleChoice,
			Options:    []string{"Never", "When incidents occur", "Monthly", "Weekly", "Daily", "Real-time monitoring"},
			Weight:     4,
			RiskMapping: map[string]RiskDescriptor{
				"Never": {
					RiskScore:   95,
					Rationale:   "No log review prevents detection of unauthorized access",
					Remediation: "Implement regular access log monitoring",
				},
				"When incidents occur": {
					RiskScore: 75,
					Rationale: "Reactive monitoring insufficient for proactive security",
				},
				"Monthly": {
					RiskScore: 45,
					Rationale: "Monthly reviews provide basic monitoring but gaps exist",
				},
				"Weekly": {
					RiskScore: 25,
					Rationale: "Weekly reviews demonstrate good security practices",
				},
				"Daily": {
					RiskScore: 15,
					Rationale: "Daily monitoring shows strong commitment to security",
				},
				"Real-time monitoring": {
					RiskScore: 5,
					Rationale: "Real-time monitoring provides optimal security oversight",
				},
			},
			RegulatoryReference: "45 CFR 164.312(b)",
		},
		{
			ID:         "tech_004",
			Category:   CategoryTechnical,
			Complexity: TierAdvanced,
			Text:       "What data integrity measures protect PHI from alteration or destruction?",
			AnswerType: AnswerMultiChoice,
			Options: []string{
				"Digital signatures for PHI records",
				"Version control systems",
				"Backup and recovery procedures tested regularly",
				"Checksums or hash verification",
				"Change audit trails",
				"Data loss prevention systems",
			},
			Weight: 4,
			Buckets: []Bucket{
				{Lo: 0, Hi: 1, Risk: RiskDescriptor{
					RiskScore:   80,
					Rationale:   "Insufficient data integrity controls risk PHI corruption",
					Remediation: "Implement comprehensive data integrity measures",
				}},
				{Lo: 2, Hi: 3, Risk: RiskDescriptor{
					RiskScore: 50,
					Rationale: "Basic integrity controls present but enhancement needed",
				}},
				{Lo: 4, Hi: 5, Risk: RiskDescriptor{
					RiskScore: 20,
					Rationale: "Good data integrity controls with minor gaps",
				}},
				{Lo: 6, Hi: 6, Risk: RiskDescriptor{
					RiskScore: 10,
					Rationale: "Comprehensive data integrity measures demonstrate excellence",
				}},
			},
			RegulatoryReference: "45 CFR 164.312(c)(1)",
		},
	}
}

func init() {
	c, err := build(catalogVersion, seedQuestions())
	if err != nil {
		// A corrupt question definition is a programming error; refuse
		// to start rather than score against a broken catalog.
		panic(err)
	}
	active = c
}
