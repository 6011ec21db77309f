package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M3 covers 1945-12-01 through 1947-05-02, the occupation interlude up
// to the new constitution: demobilization ministries and the economic
// stabilization organs. The central labor commission keeps bit 21 here
// and in every later period.
var (
	M3Cabinet                = Body{M3, 1}
	M3ImperialHousehold      = Body{M3, 2}
	M3EconomicStabilityBoard = Body{M3, 3}
	M3Interior               = Body{M3, 4}
	M3Justice                = Body{M3, 5}
	M3ForeignAffairs         = Body{M3, 6}
	M3Finance                = Body{M3, 7}
	M3Education              = Body{M3, 8}
	M3HealthWelfare          = Body{M3, 9}
	M3AgricultureForestry    = Body{M3, 10}
	M3CommerceIndustry       = Body{M3, 11}
	M3Transport              = Body{M3, 12}
	M3Communications         = Body{M3, 13}
	M3FirstDemobilization    = Body{M3, 14}
	M3SecondDemobilization   = Body{M3, 15}
	M3PriceAgency            = Body{M3, 16}
	M3CentralLaborCommission = Body{M3, 21}
)

var m3Table = &periodInfo{
	tag:   "M3",
	start: era.NewDate(1945, 12, 1),
	end:   era.NewDate(1947, 5, 2),
	rules: []nameRule{
		{M3Cabinet, "閣令", "閣", ""},
		{M3ImperialHousehold, "宮内省令", "宮内省", ""},
		{M3EconomicStabilityBoard, "経済安定本部令", "経済安定本部", ""},
		{M3Interior, "内務省令", "内務省", ""},
		{M3Justice, "司法省令", "司法省", ""},
		{M3ForeignAffairs, "外務省令", "外務省", ""},
		{M3Finance, "大蔵省令", "大蔵省", ""},
		{M3Education, "文部省令", "文部省", ""},
		{M3HealthWelfare, "厚生省令", "厚生省", ""},
		{M3AgricultureForestry, "農林省令", "農林省", ""},
		{M3CommerceIndustry, "商工省令", "商工省", ""},
		{M3Transport, "運輸省令", "運輸省", ""},
		{M3Communications, "逓信省令", "逓信省", ""},
		{M3FirstDemobilization, "第一復員省令", "第一復員省", ""},
		{M3SecondDemobilization, "第二復員省令", "第二復員省", ""},
		{M3PriceAgency, "物価庁令", "物価庁", ""},
		{M3CentralLaborCommission, "中央労働委員会規則", "中央労働委員会", ""},
	},
}
