// Package locale maps Brazilian phone area codes (DDD) to their location.
package locale

// Location describes the city and state served by an area code.
type Location struct {
	City      string `json:"city"`
	State     string `json:"state"`
	StateCode string `json:"stateCode"`
}

// dddTable covers every valid Brazilian area code, keyed by its main city.
var dddTable = map[string]Location{
	"11": {City: "São Paulo", State: "São Paulo", StateCode: "SP"},
	"12": {City: "São José dos Campos", State: "São Paulo", StateCode: "SP"},
	"13": {City: "Santos", State: "São Paulo", StateCode: "SP"},
	"14": {City: "Bauru", State: "São Paulo", StateCode: "SP"},
	"15": {City: "Sorocaba", State: "São Paulo", StateCode: "SP"},
	"16": {City: "Ribeirão Preto", State: "São Paulo", StateCode: "SP"},
	"17": {City: "São José do Rio Preto", State: "São Paulo", StateCode: "SP"},
	"18": {City: "Presidente Prudente", State: "São Paulo", StateCode: "SP"},
	"19": {City: "Campinas", State: "São Paulo", StateCode: "SP"},
	"21": {City: "Rio de Janeiro", State: "Rio de Janeiro", StateCode: "RJ"},
	"22": {City: "Campos dos Goytacazes", State: "Rio de Janeiro", StateCode: "RJ"},
	"24": {City: "Volta Redonda", State: "Rio de Janeiro", StateCode: "RJ"},
	"27": {City: "Vitória", State: "Espírito Santo", StateCode: "ES"},
	"28": {City: "Cachoeiro de Itapemirim", State: "Espírito Santo", StateCode: "ES"},
	"31": {City: "Belo Horizonte", State: "Minas Gerais", StateCode: "MG"},
	"32": {City: "Juiz de Fora", State: "Minas Gerais", StateCode: "MG"},
	"33": {City: "Governador Valadares", State: "Minas Gerais", StateCode: "MG"},
	"34": {City: "Uberlândia", State: "Minas Gerais", StateCode: "MG"},
	"35": {City: "Poços de Caldas", State: "Minas Gerais", StateCode: "MG"},
	"37": {City: "Divinópolis", State: "Minas Gerais", StateCode: "MG"},
	"38": {City: "Montes Claros", State: "Minas Gerais", StateCode: "MG"},
	"41": {City: "Curitiba", State: "Paraná", StateCode: "PR"},
	"42": {City: "Ponta Grossa", State: "Paraná", StateCode: "PR"},
	"43": {City: "Londrina", State: "Paraná", StateCode: "PR"},
	"44": {City: "Maringá", State: "Paraná", StateCode: "PR"},
	"45": {City: "Foz do Iguaçu", State: "Paraná", StateCode: "PR"},
	"46": {City: "Pato Branco", State: "Paraná", StateCode: "PR"},
	"47": {City: "Joinville", State: "Santa Catarina", StateCode: "SC"},
	"48": {City: "Florianópolis", State: "Santa Catarina", StateCode: "SC"},
	"49": {City: "Chapecó", State: "Santa Catarina", StateCode: "SC"},
	"51": {City: "Porto Alegre", State: "Rio Grande do Sul", StateCode: "RS"},
	"53": {City: "Pelotas", State: "Rio Grande do Sul", StateCode: "RS"},
	"54": {City: "Caxias do Sul", State: "Rio Grande do Sul", StateCode: "RS"},
	"55": {City: "Santa Maria", State: "Rio Grande do Sul", StateCode: "RS"},
	"61": {City: "Brasília", State: "Distrito Federal", StateCode: "DF"},
	"62": {City: "Goiânia", State: "Goiás", StateCode: "GO"},
	"63": {City: "Palmas", State: "Tocantins", StateCode: "TO"},
	"64": {City: "Rio Verde", State: "Goiás", StateCode: "GO"},
	"65": {City: "Cuiabá", State: "Mato Grosso", StateCode: "MT"},
	"66": {City: "Rondonópolis", State: "Mato Grosso", StateCode: "MT"},
	"67": {City: "Campo Grande", State: "Mato Grosso do Sul", StateCode: "MS"},
	"68": {City: "Rio Branco", State: "Acre", StateCode: "AC"},
	"69": {City: "Porto Velho", State: "Rondônia", StateCode: "RO"},
	"71": {City: "Salvador", State: "Bahia", StateCode: "BA"},
	"73": {City: "Ilhéus", State: "Bahia", StateCode: "BA"},
	"74": {City: "Juazeiro", State: "Bahia", StateCode: "BA"},
	"75": {City: "Feira de Santana", State: "Bahia", StateCode: "BA"},
	"77": {City: "Barreiras", State: "Bahia", StateCode: "BA"},
	"79": {City: "Aracaju", State: "Sergipe", StateCode: "SE"},
	"81": {City: "Recife", State: "Pernambuco", StateCode: "PE"},
	"82": {City: "Maceió", State: "Alagoas", StateCode: "AL"},
	"83": {City: "João Pessoa", State: "Paraíba", StateCode: "PB"},
	"84": {City: "Natal", State: "Rio Grande do Norte", StateCode: "RN"},
	"85": {City: "Fortaleza", State: "Ceará", StateCode: "CE"},
	"86": {City: "Teresina", State: "Piauí", StateCode: "PI"},
	"87": {City: "Petrolina", State: "Pernambuco", StateCode: "PE"},
	"88": {City: "Juazeiro do Norte", State: "Ceará", StateCode: "CE"},
	"89": {City: "Picos", State: "Piauí", StateCode: "PI"},
	"91": {City: "Belém", State: "Pará", StateCode: "PA"},
	"92": {City: "Manaus", State: "Amazonas", StateCode: "AM"},
	"93": {City: "Santarém", State: "Pará", StateCode: "PA"},
	"94": {City: "Marabá", State: "Pará", StateCode: "PA"},
	"95": {City: "Boa Vista", State: "Roraima", StateCode: "RR"},
	"96": {City: "Macapá", State: "Amapá", StateCode: "AP"},
	"97": {City: "Coari", State: "Amazonas", StateCode: "AM"},
	"98": {City: "São Luís", State: "Maranhão", StateCode: "MA"},
	"99": {City: "Imperatriz", State: "Maranhão", StateCode: "MA"},
}

// Lookup returns the location for a two-digit area code.
// The boolean is false for codes outside the numbering plan.
func Lookup(areaCode string) (Location, bool) {
	loc, ok := dddTable[areaCode]
	return loc, ok
}

// AreaCodes returns every known area code. Ordering is not guaranteed.
func AreaCodes() []string {
	codes := make([]string, 0, len(dddTable))
	for code := range dddTable {
		codes = append(codes, code)
	}
	return codes
}
