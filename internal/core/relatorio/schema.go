// internal/core/relatorio/schema.go
package relatorio

// Field identifica um campo canônico do RelatorioRow.
type Field string

const (
	FieldEntrega      Field = "entrega"
	FieldData         Field = "data"
	FieldNF           Field = "nf"
	FieldPlaca        Field = "placa"
	FieldMotorista    Field = "motorista"
	FieldFaturado     Field = "faturado"
	FieldFazEntregue  Field = "fazEntregue"
	FieldTicketRF     Field = "ticketRF"
	FieldPesoRF       Field = "pesoRF"
	FieldTicket       Field = "ticket"
	FieldPeso         Field = "peso"
	FieldPreco        Field = "preco"
	FieldTotal        Field = "total"
	FieldDeposito     Field = "deposito"
	FieldDataDeposito Field = "dataDeposito"
	FieldDescricao    Field = "descricao"

	// FieldIgnorado marca colunas sem alias conhecido; são puladas na normalização.
	FieldIgnorado Field = ""
)

// Kind classifica o tipo semântico de um campo e determina a coerção e o default.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindDecimal
	KindDate
)

var fieldKinds = map[Field]Kind{
	FieldEntrega:      KindInt,
	FieldData:         KindDate,
	FieldNF:           KindText,
	FieldPlaca:        KindText,
	FieldMotorista:    KindText,
	FieldFaturado:     KindText,
	FieldFazEntregue:  KindText,
	FieldTicketRF:     KindText,
	FieldPesoRF:       KindDecimal,
	FieldTicket:       KindText,
	FieldPeso:         KindDecimal,
	FieldPreco:        KindDecimal,
	FieldTotal:        KindDecimal,
	FieldDeposito:     KindDecimal,
	FieldDataDeposito: KindDate,
	FieldDescricao:    KindText,
}

// KindOf devolve o tipo semântico de um campo canônico.
func KindOf(f Field) Kind {
	return fieldKinds[f]
}

// AliasTable mapeia um cabeçalho normalizado (minúsculas, sem acentos, só
// letras e dígitos) para uma lista ordenada de campos candidatos. Quase todos
// os aliases têm um único candidato; "data" tem dois porque a planilha de
// referência traz duas colunas "Data": a da entrega e a do depósito. A primeira
// ocorrência reivindica o primeiro candidato livre, as seguintes pegam o próximo.
type AliasTable map[string][]Field

// DefaultAliases devolve a tabela de aliases padrão do relatório de entregas.
// A tabela é fixa em tempo de build; o resolver recebe uma cópia injetada e
// nunca a modifica em tempo de execução.
func DefaultAliases() AliasTable {
	return AliasTable{
		"entrega":   {FieldEntrega},
		"seq":       {FieldEntrega},
		"sequencia": {FieldEntrega},

		"data":        {FieldData, FieldDataDeposito},
		"dataentrega": {FieldData},

		"nf":          {FieldNF},
		"nota":        {FieldNF},
		"notafiscal":  {FieldNF},
		"numeronota":  {FieldNF},

		"placa":        {FieldPlaca},
		"placaveiculo": {FieldPlaca},

		"motorista":     {FieldMotorista},
		"nomemotorista": {FieldMotorista},
		"condutor":      {FieldMotorista},

		"faturado":     {FieldFaturado},
		"cliente":      {FieldFaturado},
		"faturadopara": {FieldFaturado},

		"fazentregue":    {FieldFazEntregue},
		"fazenda":        {FieldFazEntregue},
		"fazendaentrega": {FieldFazEntregue},
		"destino":        {FieldFazEntregue},

		"ticketrf": {FieldTicketRF},
		"pesorf":   {FieldPesoRF},

		"ticket":       {FieldTicket},
		"numeroticket": {FieldTicket},

		"peso":        {FieldPeso},
		"pesokg":      {FieldPeso},
		"pesoliquido": {FieldPeso},

		"preco":         {FieldPreco},
		"precounitario": {FieldPreco},
		"valorunitario": {FieldPreco},

		"total":      {FieldTotal},
		"totalr":     {FieldTotal}, // "Total R$": o cifrão não sobrevive à normalização
		"valortotal": {FieldTotal},

		"deposito":      {FieldDeposito},
		"depositor":     {FieldDeposito}, // "Depósito R$"
		"valordeposito": {FieldDeposito},

		"datadeposito": {FieldDataDeposito},
		"dtdeposito":   {FieldDataDeposito},

		"descricao":  {FieldDescricao},
		"observacao": {FieldDescricao},
		"obs":        {FieldDescricao},
		"produto":    {FieldDescricao},
	}
}
