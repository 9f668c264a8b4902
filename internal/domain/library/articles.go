package library

// Article es un texto educativo de la biblioteca.
type Article struct {
	ID       string
	Title    string
	Category string
	Preview  string
	Content  string
}

// catalog es fijo; el orden es el de la pantalla "Biblioteca".
var catalog = []Article{
	{
		ID:       "1",
		Title:    "Sinais de Alerta na Saúde",
		Category: "Prevenção",
		Preview:  "Saiba identificar quando seu pássaro precisa de ajuda veterinária imediata.",
		Content:  "Observar seu pássaro diariamente é a melhor prevenção. Sinais como penas eriçadas constantemente, dormir no fundo da gaiola, respiração ofegante ou com cauda balançando, e mudanças nas fezes são indicativos sérios de doença. O sistema de semáforo deste app ajuda a categorizar esses sinais, mas a intuição do tutor é fundamental. Se notar apatia ou falta de apetite por mais de 24h, procure um especialista.",
	},
	{
		ID:       "2",
		Title:    "Nutrição Balanceada",
		Category: "Alimentação",
		Preview:  "Sementes não são tudo! Descubra como diversificar a dieta.",
		Content:  "Muitos criadores oferecem apenas sementes, mas isso pode causar obesidade e deficiências vitamínicas. Uma dieta ideal inclui ração extrusada de boa qualidade (cerca de 60-70% da dieta), sementes limpas com moderação, e vegetais frescos como couve, jiló e milho verde. Evite abacate, chocolate e sementes de frutas, que são tóxicos.",
	},
	{
		ID:       "3",
		Title:    "Higiene da Gaiola",
		Category: "Cuidados",
		Preview:  "A limpeza correta evita ácaros e doenças respiratórias.",
		Content:  "A gaiola deve ser limpa diariamente (troca de papel/fundo) e lavada completamente uma vez por semana. Bebedouros devem ser esfregados todos os dias para evitar limo e bactérias. Poleiros de madeira devem ser higienizados ou trocados regularmente. O acúmulo de fezes traz doenças como coccidiose.",
	},
	{
		ID:       "4",
		Title:    "A Muda de Penas",
		Category: "Fisiologia",
		Preview:  "O que esperar e como cuidar durante este período delicado.",
		Content:  "A muda é um processo natural de renovação das penas que ocorre geralmente uma vez ao ano. O pássaro pode ficar mais quieto e parar de cantar. É essencial reforçar a alimentação com vitaminas e evitar correntes de ar. Não force o canto ou manuseio excessivo nesta fase.",
	},
	{
		ID:       "5",
		Title:    "Enriquecimento Ambiental",
		Category: "Bem-estar",
		Preview:  "Brinquedos e desafios mentais para um pássaro feliz.",
		Content:  "Pássaros são animais inteligentes e precisam de estímulo. Gaiolas vazias geram estresse e bicagem de penas. Ofereça brinquedos de madeira, corda (segura), e desafios para buscar comida. Mude a disposição dos poleiros periodicamente para exercitar a musculatura.",
	},
}
