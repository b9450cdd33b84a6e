// Package card classifica números de cartão em bandeiras por prefixo.
package card

import "strings"

// Brand é a bandeira detectada; vazio significa desconhecida.
type Brand string

const (
	BrandNone       Brand = ""
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandHipercard  Brand = "hipercard"
	BrandElo        Brand = "elo"
)

// Detect classifica um número de cartão (apenas dígitos, qualquer tamanho)
// numa bandeira. As regras rodam em ordem fixa de prioridade e a primeira
// que casa vence — a ordem importa porque alguns prefixos se sobrepõem
// (prefixos Elo começados em 4 são capturados antes pela regra Visa, como
// no comportamento observado dos emissores). Total e determinística: toda
// string de dígitos, inclusive vazia, tem exatamente um resultado.
func Detect(number string) Brand {
	digits := strings.ReplaceAll(number, " ", "")

	switch {
	case strings.HasPrefix(digits, "4"):
		return BrandVisa
	case inPrefixRange(digits, 51, 55) || inPrefixRange(digits, 22, 27):
		return BrandMastercard
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return BrandAmex
	case strings.HasPrefix(digits, "6011") || strings.HasPrefix(digits, "65"):
		return BrandDiscover
	case strings.HasPrefix(digits, "606282") || strings.HasPrefix(digits, "3841"):
		return BrandHipercard
	case isEloPrefix(digits):
		return BrandElo
	}
	return BrandNone
}

// inPrefixRange testa se os dois primeiros dígitos formam um número dentro
// de [low, high].
func inPrefixRange(digits string, low, high int) bool {
	if len(digits) < 2 {
		return false
	}
	d0, d1 := digits[0], digits[1]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
		return false
	}
	prefix := int(d0-'0')*10 + int(d1-'0')
	return prefix >= low && prefix <= high
}

func isEloPrefix(digits string) bool {
	if len(digits) < 6 {
		return false
	}
	_, ok := eloPrefixes[digits[:6]]
	return ok
}

var eloPrefixes = buildPrefixSet(
	"401178", "401179", "431274", "438935", "451416", "457393",
	"457631", "457632", "504175", "627780", "636297", "636368",
	"650031", "650032", "650033", "650035", "650036", "650037",
	"650038", "650039", "650040", "650041", "650042", "650043",
	"650044", "650045", "650046", "650047", "650048", "650049",
	"650050", "650051", "650405", "650406", "650407", "650408",
	"650409", "650410", "650411", "650412", "650413", "650414",
	"650415", "650416", "650417", "650418", "650419", "650420",
	"650421", "650422", "650423", "650424", "650425", "650426",
	"650427", "650428", "650429", "650430", "650431", "650432",
	"650433", "650434", "650435", "650436", "650437", "650438",
	"650439", "650485", "650486", "650487", "650488", "650489",
	"650500", "650501", "650502", "650503", "650504", "650505",
	"650506", "650507", "650508", "650509", "650510", "650511",
	"650512", "650513", "650514", "650515", "650516", "650517",
	"650518", "650519", "650520", "650521", "650522", "650523",
	"650524", "650525", "650526", "650527", "650528", "650529",
	"650530", "650531", "650532", "650533", "650534", "650535",
	"650536", "650537", "650538", "650541", "650542", "650543",
	"650544", "650545", "650546", "650547", "650548", "650549",
	"650598", "650700", "650701", "650702", "650703", "650704",
	"650705", "650706", "650707", "650708", "650709", "650710",
	"650711", "650712", "650713", "650714", "650715", "650716",
	"650717", "650718", "650719", "650720", "650721", "650722",
	"650723", "650724", "650725", "650726", "650727", "650901",
	"650902", "650903", "650904", "650905", "650906", "650907",
	"650908", "650909", "650910", "650911", "650912", "650913",
	"650914", "650915", "650916", "650917", "650918", "650919",
	"650920", "651652", "651653", "651654", "655000", "655001",
)

func buildPrefixSet(prefixes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(prefixes))
	for _, p := range prefixes {
		set[p] = struct{}{}
	}
	return set
}
