package schema

// JutsuTable represents the 'public.jutsus' table
type JutsuTable struct {
	Table       string
	ID          string
	Nome        string
	Informacoes string
	ImagemURL   string
	IPAddress   string
	CreatedAt   string
}

// Jutsu is the schema definition for jutsus
var Jutsu = JutsuTable{
	Table:       "jutsus",
	ID:          "id",
	Nome:        "nome",
	Informacoes: "informacoes",
	ImagemURL:   "imagem_url",
	IPAddress:   "ip_address",
	CreatedAt:   "created_at",
}
