package extract

// Field identifies one recognized attribute of a capital description.
// Upstream model output is keyed by free-form names; everything downstream
// is keyed by this fixed enumeration.
type Field string

const (
	FieldOrdinaryShareCapital Field = "ordinary_share_capital"
	FieldRetainedEarnings     Field = "retained_earnings"
	FieldOtherCET1Adjustments Field = "other_cet1_adjustments"
	FieldAT1Instruments       Field = "at1_instruments"
	FieldTier2Instruments     Field = "tier2_instruments"
	FieldIntangibleAssets     Field = "intangible_assets"
	FieldOtherDeductions      Field = "other_deductions"
	FieldReportingDate        Field = "reporting_date"
	FieldCurrency             Field = "currency"
)

// monetaryFields lists the amount-carrying fields in extraction order.
var monetaryFields = []Field{
	FieldOrdinaryShareCapital,
	FieldRetainedEarnings,
	FieldOtherCET1Adjustments,
	FieldAT1Instruments,
	FieldTier2Instruments,
	FieldIntangibleAssets,
	FieldOtherDeductions,
}

// requiredFields must parse cleanly when present. A garbage value for one of
// these fails the whole extraction instead of defaulting to zero.
var requiredFields = map[Field]bool{
	FieldOrdinaryShareCapital: true,
	FieldRetainedEarnings:     true,
}

// signedFields may legitimately carry negative amounts. Everything else is
// clamped to zero when negative.
var signedFields = map[Field]bool{
	FieldOtherCET1Adjustments: true,
}

// aliases maps each field to its accepted upstream key names, in match
// order. The first alias found in the input wins. Keys are compared after
// normalizeKey.
var aliases = map[Field][]string{
	FieldOrdinaryShareCapital: {
		"ordinary_share_capital",
		"share_capital",
		"cet1_ordinary_shares",
		"ordinary_shares",
		"paid_up_capital",
		"common_equity_tier_1",
		"cet1",
	},
	FieldRetainedEarnings: {
		"retained_earnings",
		"retained_profits",
		"accumulated_profits",
		"revenue_reserves",
	},
	FieldOtherCET1Adjustments: {
		"other_cet1_adjustments",
		"cet1_adjustments",
		"other_adjustments",
		"other_comprehensive_income",
		"oci",
	},
	FieldAT1Instruments: {
		"at1_instruments",
		"at1",
		"additional_tier_1",
		"additional_tier_1_instruments",
		"at1_capital",
	},
	FieldTier2Instruments: {
		"tier2_instruments",
		"tier_2_instruments",
		"tier2",
		"tier_2",
		"subordinated_debt",
		"tier2_capital",
	},
	FieldIntangibleAssets: {
		"intangible_assets",
		"intangibles",
		"intangibles_deduction",
		"goodwill",
	},
	FieldOtherDeductions: {
		"other_deductions",
		"deductions",
		"deferred_tax_deduction",
	},
	FieldReportingDate: {
		"reporting_date",
		"report_date",
		"as_of_date",
		"date",
	},
	FieldCurrency: {
		"currency",
		"reporting_currency",
		"ccy",
	},
}
