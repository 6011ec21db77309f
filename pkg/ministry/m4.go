package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M4 covers 1947-05-03 (the current constitution taking effect) through
// 1949-05-31. Commission rules join the table from bit 21 upward.
var (
	M4LegalAffairsAgency             = Body{M4, 1}
	M4PrimeMinistersOffice           = Body{M4, 2}
	M4EconomicStabilityBoard         = Body{M4, 3}
	M4Interior                       = Body{M4, 4}
	M4Justice                        = Body{M4, 5}
	M4ForeignAffairs                 = Body{M4, 6}
	M4Finance                        = Body{M4, 7}
	M4Education                      = Body{M4, 8}
	M4HealthWelfare                  = Body{M4, 9}
	M4AgricultureForestry            = Body{M4, 10}
	M4InternationalTradeIndustry     = Body{M4, 11}
	M4Transport                      = Body{M4, 12}
	M4Communications                 = Body{M4, 13}
	M4Labor                          = Body{M4, 14}
	M4Construction                   = Body{M4, 15}
	M4PriceAgency                    = Body{M4, 16}
	M4CommerceIndustry               = Body{M4, 17}
	M4CentralLaborCommission         = Body{M4, 21}
	M4FairTradeCommission            = Body{M4, 22}
	M4NationalPublicSafetyCommission = Body{M4, 23}
)

var m4Table = &periodInfo{
	tag:   "M4",
	start: era.NewDate(1947, 5, 3),
	end:   era.NewDate(1949, 5, 31),
	rules: []nameRule{
		{M4LegalAffairsAgency, "法務庁令", "法務庁", ""},
		{M4PrimeMinistersOffice, "総理庁令", "総理庁", ""},
		{M4EconomicStabilityBoard, "経済安定本部令", "経済安定本部", ""},
		{M4Interior, "内務省令", "内務省", ""},
		{M4Justice, "司法省令", "司法省", ""},
		{M4ForeignAffairs, "外務省令", "外務省", ""},
		{M4Finance, "大蔵省令", "大蔵省", ""},
		{M4Education, "文部省令", "文部省", ""},
		{M4HealthWelfare, "厚生省令", "厚生省", ""},
		{M4AgricultureForestry, "農林省令", "農林省", ""},
		{M4InternationalTradeIndustry, "通商産業省令", "通商産業省", ""},
		{M4Transport, "運輸省令", "運輸省", ""},
		{M4Communications, "逓信省令", "逓信省", ""},
		{M4Labor, "労働省令", "労働省", ""},
		{M4Construction, "建設省令", "建設省", ""},
		{M4PriceAgency, "物価庁令", "物価庁", ""},
		{M4CommerceIndustry, "商工省令", "商工省", ""},
		{M4CentralLaborCommission, "中央労働委員会規則", "中央労働委員会", ""},
		{M4FairTradeCommission, "公正取引委員会規則", "公正取引委員会", ""},
		{M4NationalPublicSafetyCommission, "国家公安委員会規則", "国家公安委員会", ""},
	},
}
