package catalog

// 内置编目数据。US / GB 为显式定义，其余国家回落 DEFAULT。
// ID 跨国家按字面匹配参与自动勾选，编目作者需自行保证语义一致。

func builtinDefinitions() map[string]map[Group][]Requirement {
	return map[string]map[Group][]Requirement{
		"US": {
			GroupAcademic: {
				{
					ID:           "minimum_gpa",
					Label:        "Meet Minimum GPA Requirement",
					Description:  "Ensure your GPA meets the university minimum requirement",
					Priority:     1,
					Level:        1,
					Dependencies: []string{},
					Score:        20,
					Required:     true,
					ScoreKind:    ScoreKindGPA,
				},
				{
					ID:           "sat_scores",
					Label:        "SAT Scores",
					Description:  "Submit SAT scores (minimum score required)",
					Priority:     2,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindSAT,
				},
				{
					ID:           "academic_transcripts",
					Label:        "Academic Transcripts and Certificates",
					Description:  "Collect all academic transcripts and certificates",
					Priority:     3,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        10,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupLanguage: {
				{
					ID:           "toefl_ielts",
					Label:        "TOEFL/IELTS Scores",
					Description:  "Submit English proficiency test scores (TOEFL or IELTS)",
					Priority:     4,
					Level:        3,
					Dependencies: []string{"minimum_gpa"},
					Score:        10,
					Required:     true,
					ScoreKind:    ScoreKindToeflIelts,
				},
			},
			GroupDocuments: {
				{
					ID:           "university_acceptance_letter",
					Label:        "University Acceptance Letter",
					Description:  "Obtain the official acceptance letter from your university",
					Priority:     5,
					Level:        4,
					Dependencies: []string{"sat_scores", "academic_transcripts", "toefl_ielts"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupVisa: {
				{
					ID:           "passport_valid",
					Label:        "Passport Valid 6 Months Beyond Stay",
					Description:  "Ensure your passport is valid for at least 6 months beyond your intended stay",
					Priority:     6,
					Level:        5,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "ds160_confirmation",
					Label:        "DS-160 Confirmation Page",
					Description:  "Complete and submit the DS-160 form online",
					Priority:     7,
					Level:        5,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "visa_application_fee",
					Label:        "Visa Application Fee Receipt",
					Description:  "Pay the visa application fee and keep the receipt",
					Priority:     8,
					Level:        5,
					Dependencies: []string{"ds160_confirmation"},
					Score:        3,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "sevis_fee",
					Label:        "SEVIS I-901 Fee Receipt",
					Description:  "Pay the SEVIS I-901 fee and obtain the receipt",
					Priority:     9,
					Level:        5,
					Dependencies: []string{"ds160_confirmation"},
					Score:        3,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "form_i20",
					Label:        "Form I-20 (Signed)",
					Description:  "Receive and sign the Form I-20 from your university",
					Priority:     10,
					Level:        5,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "passport_photo",
					Label:        "Passport Size Photo (US Visa Spec)",
					Description:  "Get passport-sized photos meeting US visa specifications",
					Priority:     11,
					Level:        6,
					Dependencies: []string{"visa_application_fee", "sevis_fee"},
					Score:        2,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "visa_appointment",
					Label:        "Visa Appointment Confirmation",
					Description:  "Schedule and confirm your visa interview appointment",
					Priority:     12,
					Level:        6,
					Dependencies: []string{"passport_photo", "form_i20"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "ties_to_home_country",
					Label:        "Evidence of Ties to Home Country",
					Description:  "Prepare documents showing strong ties to your home country",
					Priority:     13,
					Level:        6,
					Dependencies: []string{"visa_appointment"},
					Score:        2,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupFinancial: {
				{
					ID:           "proof_of_financial_support",
					Label:        "Proof of Financial Support",
					Description:  "Provide bank statements and financial documents",
					Priority:     14,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        10,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
		},
		"GB": {
			GroupAcademic: {
				{
					ID:           "minimum_gpa",
					Label:        "Meet Minimum GPA Requirement",
					Description:  "Ensure your GPA meets the university minimum requirement",
					Priority:     1,
					Level:        1,
					Dependencies: []string{},
					Score:        20,
					Required:     true,
					ScoreKind:    ScoreKindGPA,
				},
				{
					ID:           "academic_transcripts",
					Label:        "Academic Transcripts and Certificates",
					Description:  "Collect all academic transcripts and certificates",
					Priority:     2,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupLanguage: {
				{
					ID:           "ielts_toefl",
					Label:        "IELTS/TOEFL Scores",
					Description:  "Submit English proficiency test scores (IELTS preferred for UK)",
					Priority:     3,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindToeflIelts,
				},
			},
			GroupDocuments: {
				{
					ID:           "university_acceptance_letter",
					Label:        "University Acceptance Letter",
					Description:  "Obtain the official acceptance letter (CAS) from your university",
					Priority:     4,
					Level:        3,
					Dependencies: []string{"academic_transcripts", "ielts_toefl"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupVisa: {
				{
					ID:           "passport_valid",
					Label:        "Passport Valid 6 Months Beyond Stay",
					Description:  "Ensure your passport is valid for at least 6 months beyond your intended stay",
					Priority:     5,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "uk_visa_application",
					Label:        "UK Visa Application (Online)",
					Description:  "Complete the UK visa application online",
					Priority:     6,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "visa_application_fee",
					Label:        "Visa Application Fee Receipt",
					Description:  "Pay the visa application fee and keep the receipt",
					Priority:     7,
					Level:        5,
					Dependencies: []string{"uk_visa_application"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "ihs_payment",
					Label:        "Immigration Health Surcharge (IHS) Payment",
					Description:  "Pay the Immigration Health Surcharge",
					Priority:     8,
					Level:        5,
					Dependencies: []string{"uk_visa_application"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "biometric_appointment",
					Label:        "Biometric Appointment",
					Description:  "Schedule and attend your biometric appointment",
					Priority:     9,
					Level:        6,
					Dependencies: []string{"visa_application_fee", "ihs_payment"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "passport_photo",
					Label:        "Passport Size Photo",
					Description:  "Get passport-sized photos meeting UK visa specifications",
					Priority:     10,
					Level:        5,
					Dependencies: []string{"uk_visa_application"},
					Score:        3,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupFinancial: {
				{
					ID:           "proof_of_financial_support",
					Label:        "Proof of Financial Support",
					Description:  "Provide bank statements showing sufficient funds for tuition and living costs",
					Priority:     11,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        12,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
		},
		DefaultCountryCode: {
			GroupAcademic: {
				{
					ID:           "minimum_gpa",
					Label:        "Meet Minimum GPA Requirement",
					Description:  "Ensure your GPA meets the university minimum requirement",
					Priority:     1,
					Level:        1,
					Dependencies: []string{},
					Score:        20,
					Required:     true,
					ScoreKind:    ScoreKindGPA,
				},
				{
					ID:           "academic_transcripts",
					Label:        "Academic Transcripts and Certificates",
					Description:  "Collect all academic transcripts and certificates",
					Priority:     2,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupLanguage: {
				{
					ID:           "language_proficiency",
					Label:        "Language Proficiency Test",
					Description:  "Submit required language proficiency test scores (TOEFL, IELTS, or other)",
					Priority:     3,
					Level:        2,
					Dependencies: []string{"minimum_gpa"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindToeflIelts,
				},
			},
			GroupDocuments: {
				{
					ID:           "university_acceptance_letter",
					Label:        "University Acceptance Letter",
					Description:  "Obtain the official acceptance letter from your university",
					Priority:     4,
					Level:        3,
					Dependencies: []string{"academic_transcripts", "language_proficiency"},
					Score:        15,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupVisa: {
				{
					ID:           "passport_valid",
					Label:        "Passport Valid 6 Months Beyond Stay",
					Description:  "Ensure your passport is valid for at least 6 months beyond your intended stay",
					Priority:     5,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "visa_application",
					Label:        "Visa Application",
					Description:  "Complete the visa application for your destination country",
					Priority:     6,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        10,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
				{
					ID:           "visa_appointment",
					Label:        "Visa Appointment Confirmation",
					Description:  "Schedule and confirm your visa interview appointment",
					Priority:     7,
					Level:        5,
					Dependencies: []string{"visa_application"},
					Score:        5,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
			GroupFinancial: {
				{
					ID:           "proof_of_financial_support",
					Label:        "Proof of Financial Support",
					Description:  "Provide bank statements and financial documents",
					Priority:     8,
					Level:        4,
					Dependencies: []string{"university_acceptance_letter"},
					Score:        10,
					Required:     true,
					ScoreKind:    ScoreKindGeneric,
				},
			},
		},
	}
}

// Builtin 用内置编目构建注册表
func Builtin() (*Registry, error) {
	return NewRegistry(builtinDefinitions())
}
