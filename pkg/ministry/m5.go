package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M5 covers 1949-06-01 through 2001-01-05, the post-war ministry system
// up to the central-government reform.
var (
	M5LegalAffairsAgency                  = Body{M5, 1}
	M5PrimeMinistersOffice                = Body{M5, 2}
	M5EconomicStabilityBoard              = Body{M5, 3}
	M5HomeAffairs                         = Body{M5, 4}
	M5Justice                             = Body{M5, 5}
	M5ForeignAffairs                      = Body{M5, 6}
	M5Finance                             = Body{M5, 7}
	M5Education                           = Body{M5, 8}
	M5HealthWelfare                       = Body{M5, 9}
	M5AgricultureForestryFisheries        = Body{M5, 10}
	M5InternationalTradeIndustry          = Body{M5, 11}
	M5Transport                           = Body{M5, 12}
	M5PostsAndTelecommunications          = Body{M5, 13}
	M5Labor                               = Body{M5, 14}
	M5Construction                        = Body{M5, 15}
	M5PriceAgency                         = Body{M5, 16}
	M5AgricultureForestry                 = Body{M5, 17}
	M5Telecommunications                  = Body{M5, 18}
	M5GovernmentReformHeadquarters        = Body{M5, 19}
	M5RadioRegulatoryCommission           = Body{M5, 20}
	M5CentralLaborCommission              = Body{M5, 21}
	M5FairTradeCommission                 = Body{M5, 22}
	M5NationalPublicSafetyCommission      = Body{M5, 23}
	M5PollutionAdjustmentCommission       = Body{M5, 24}
	M5PublicSecurityExaminationCommission = Body{M5, 25}
)

var m5Table = &periodInfo{
	tag:   "M5",
	start: era.NewDate(1949, 6, 1),
	end:   era.NewDate(2001, 1, 5),
	rules: []nameRule{
		{M5LegalAffairsAgency, "法務庁令", "法務庁", ""},
		{M5PrimeMinistersOffice, "総理庁令", "総理庁", ""},
		{M5EconomicStabilityBoard, "経済安定本部令", "経済安定本部", ""},
		{M5HomeAffairs, "自治省令", "自治省", ""},
		{M5Justice, "法務省令", "法務省", ""},
		{M5ForeignAffairs, "外務省令", "外務省", ""},
		{M5Finance, "大蔵省令", "大蔵省", ""},
		{M5Education, "文部省令", "文部省", ""},
		{M5HealthWelfare, "厚生省令", "厚生省", ""},
		{M5AgricultureForestryFisheries, "農林水産省令", "農林水産省", ""},
		{M5InternationalTradeIndustry, "通商産業省令", "通商産業省", ""},
		{M5Transport, "運輸省令", "運輸省", ""},
		{M5PostsAndTelecommunications, "郵政省令", "郵政省", ""},
		{M5Labor, "労働省令", "労働省", ""},
		{M5Construction, "建設省令", "建設省", ""},
		{M5PriceAgency, "物価庁令", "物価庁", ""},
		{M5AgricultureForestry, "農林省令", "農林省", ""},
		{M5Telecommunications, "電気通信省令", "電気通信省", ""},
		{M5GovernmentReformHeadquarters, "中央省庁等改革推進本部令", "中央省庁等改革推進本部", ""},
		{M5RadioRegulatoryCommission, "電波監理委員会規則", "電波監理委員会", ""},
		{M5CentralLaborCommission, "中央労働委員会規則", "中央労働委員会", ""},
		{M5FairTradeCommission, "公正取引委員会規則", "公正取引委員会", ""},
		{M5NationalPublicSafetyCommission, "国家公安委員会規則", "国家公安委員会", ""},
		{M5PollutionAdjustmentCommission, "公害等調整委員会規則", "公害等調整委員会", ""},
		{M5PublicSecurityExaminationCommission, "公安審査委員会規則", "公安審査委員会", ""},
	},
}
