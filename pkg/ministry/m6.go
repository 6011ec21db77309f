package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M6 covers 2001-01-06 onward, the current ministry system. Bits 16 and
// 17 are reserved gaps in the published table.
var (
	M6CabinetSecretariat                      = Body{M6, 1}
	M6PrimeMinistersOffice                    = Body{M6, 2}
	M6ReconstructionAgency                    = Body{M6, 3}
	M6HomeAffairs                             = Body{M6, 4}
	M6Justice                                 = Body{M6, 5}
	M6ForeignAffairs                          = Body{M6, 6}
	M6Finance                                 = Body{M6, 7}
	M6EducationScience                        = Body{M6, 8}
	M6HealthLaborWelfare                      = Body{M6, 9}
	M6AgricultureForestryFisheries            = Body{M6, 10}
	M6EconomyTradeIndustry                    = Body{M6, 11}
	M6LandInfrastructureTransport             = Body{M6, 12}
	M6Environment                             = Body{M6, 13}
	M6Defense                                 = Body{M6, 14}
	M6DigitalAgency                           = Body{M6, 15}
	M6PersonalInformationProtectionCommission = Body{M6, 18}
	M6TransportSafetyBoard                    = Body{M6, 19}
	M6NuclearRegulationAuthority              = Body{M6, 20}
	M6CentralLaborCommission                  = Body{M6, 21}
	M6FairTradeCommission                     = Body{M6, 22}
	M6NationalPublicSafetyCommission          = Body{M6, 23}
	M6PollutionAdjustmentCommission           = Body{M6, 24}
	M6PublicSecurityExaminationCommission     = Body{M6, 25}
	M6CasinoManagementCommission              = Body{M6, 26}
)

var m6Table = &periodInfo{
	tag:   "M6",
	start: era.NewDate(2001, 1, 6),
	end:   era.MaxDate,
	rules: []nameRule{
		{M6CabinetSecretariat, "内閣官房令", "内閣官房", ""},
		{M6PrimeMinistersOffice, "総理庁令", "総理庁", ""},
		{M6ReconstructionAgency, "復興庁令", "復興庁", ""},
		{M6HomeAffairs, "自治省令", "自治省", ""},
		{M6Justice, "法務省令", "法務省", ""},
		{M6ForeignAffairs, "外務省令", "外務省", ""},
		{M6Finance, "財務省令", "財務省", ""},
		{M6EducationScience, "文部科学省令", "文部科学省", ""},
		{M6HealthLaborWelfare, "厚生労働省令", "厚生労働省", ""},
		{M6AgricultureForestryFisheries, "農林水産省令", "農林水産省", ""},
		{M6EconomyTradeIndustry, "経済産業省令", "経済産業省", ""},
		{M6LandInfrastructureTransport, "国土交通省令", "国土交通省", ""},
		{M6Environment, "環境省令", "環境省", ""},
		{M6Defense, "防衛省令", "防衛省", ""},
		{M6DigitalAgency, "デジタル庁令", "デジタル庁", ""},
		{M6PersonalInformationProtectionCommission, "特定個人情報保護委員会規則", "特定個人情報保護委員会", ""},
		{M6TransportSafetyBoard, "運輸安全委員会規則", "運輸安全委員会", ""},
		{M6NuclearRegulationAuthority, "原子力規制委員会規則", "原子力規制委員会", ""},
		{M6CentralLaborCommission, "中央労働委員会規則", "中央労働委員会", ""},
		{M6FairTradeCommission, "公正取引委員会規則", "公正取引委員会", ""},
		{M6NationalPublicSafetyCommission, "国家公安委員会規則", "国家公安委員会", ""},
		{M6PollutionAdjustmentCommission, "公害等調整委員会規則", "公害等調整委員会", ""},
		{M6PublicSecurityExaminationCommission, "公安審査委員会規則", "公安審査委員会", ""},
		{M6CasinoManagementCommission, "カジノ管理委員会規則", "カジノ管理委員会", ""},
	},
}
