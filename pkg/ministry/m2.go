package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M2 covers 1943-11-01 through 1945-11-30, the late-war consolidation:
// transport and communications merge, and the munitions ministry
// appears.
var (
	M2Cabinet                 = Body{M2, 1}
	M2ImperialHousehold       = Body{M2, 2}
	M2GreaterEastAsia         = Body{M2, 3}
	M2Interior                = Body{M2, 4}
	M2Justice                 = Body{M2, 5}
	M2ForeignAffairs          = Body{M2, 6}
	M2Finance                 = Body{M2, 7}
	M2Education               = Body{M2, 8}
	M2HealthWelfare           = Body{M2, 9}
	M2AgricultureCommerce     = Body{M2, 10}
	M2CommerceIndustry        = Body{M2, 11}
	M2Transport               = Body{M2, 12}
	M2TransportCommunications = Body{M2, 13}
	M2ArmyA                   = Body{M2, 14}
	M2Navy                    = Body{M2, 15}
	M2Munitions               = Body{M2, 16}
	M2AgricultureForestry     = Body{M2, 17}
)

var m2Table = &periodInfo{
	tag:   "M2",
	start: era.NewDate(1943, 11, 1),
	end:   era.NewDate(1945, 11, 30),
	rules: []nameRule{
		{M2Cabinet, "閣令", "閣", ""},
		{M2ImperialHousehold, "宮内省令", "宮内省", ""},
		{M2GreaterEastAsia, "大東亜省令", "大東亜省", ""},
		{M2Interior, "内務省令", "内務省", ""},
		{M2Justice, "司法省令", "司法省", ""},
		{M2ForeignAffairs, "外務省令", "外務省", ""},
		{M2Finance, "大蔵省令", "大蔵省", ""},
		{M2Education, "文部省令", "文部省", ""},
		{M2HealthWelfare, "厚生省令", "厚生省", ""},
		{M2AgricultureCommerce, "農商務省令", "農商務省", ""},
		{M2CommerceIndustry, "商工省令", "商工省", ""},
		{M2Transport, "運輸省令", "運輸省", ""},
		{M2TransportCommunications, "運輸通信省令", "運輸通信省", ""},
		{M2ArmyA, "陸軍省令（甲）", "陸軍省", "甲"},
		{M2Navy, "海軍省令", "海軍省", ""},
		{M2Munitions, "軍需省令", "軍需省", ""},
		{M2AgricultureForestry, "農林省令", "農林省", ""},
	},
}
