package dataset

import "github.com/okian/quantumtech/internal/domain/model"

// Authored tables. Unexported so the only way out is through the copying
// accessors in dataset.go.

var discoveries = []model.Discovery{
	{Year: 1900, Name: "Teoria dei Quanti (Planck)", Importance: 95,
		Description: "Planck scopre che l'energia è quantizzata in pacchetti discreti."},
	{Year: 1913, Name: "Modello atomico di Bohr", Importance: 80,
		Description: "Bohr descrive gli elettroni come occupanti orbite specifiche attorno al nucleo."},
	{Year: 1925, Name: "Meccanica Quantistica (Schrödinger, Heisenberg)", Importance: 100,
		Description: "Formulazione matematica completa della meccanica quantistica."},
	{Year: 1927, Name: "Principio di Indeterminazione", Importance: 90,
		Description: "Heisenberg stabilisce che non si possono conoscere contemporaneamente posizione e velocità."},
	{Year: 1935, Name: "Paradosso EPR (Entanglement)", Importance: 85,
		Description: "Einstein, Podolsky e Rosen descrivono il fenomeno dell'entanglement quantistico."},
	{Year: 1947, Name: "Elettrodinamica Quantistica", Importance: 75,
		Description: "Teoria che unisce meccanica quantistica ed elettromagnetismo."},
	{Year: 1957, Name: "Teoria BCS della Superconduttività", Importance: 70,
		Description: "Teoria che spiega la superconduttività attraverso coppie di elettroni."},
	{Year: 1981, Name: "Quantum Computing (Feynman)", Importance: 95,
		Description: "Feynman propone l'idea di usare sistemi quantistici per calcoli."},
	{Year: 1994, Name: "Algoritmo di Shor", Importance: 80,
		Description: "Algoritmo quantistico per la fattorizzazione di numeri grandi."},
	{Year: 2012, Name: "Bosone di Higgs", Importance: 90,
		Description: "Rilevamento della particella che conferisce massa."},
}

var technologies = []model.Technology{
	{Year: 1947, Name: "Transistor", ImpactBillions: 1000, Sector: "Elettronica",
		RelatedDiscovery: "Meccanica Quantistica", EverydayDevices: "Smartphone, computer, elettrodomestici"},
	{Year: 1958, Name: "Circuito Integrato", ImpactBillions: 900, Sector: "Elettronica",
		RelatedDiscovery: "Meccanica Quantistica", EverydayDevices: "Tutti i dispositivi elettronici moderni"},
	{Year: 1960, Name: "Laser", ImpactBillions: 500, Sector: "Vari",
		RelatedDiscovery: "Meccanica Quantistica", EverydayDevices: "Lettori CD/DVD, scanner, puntatori"},
	{Year: 1970, Name: "MRI (Risonanza Magnetica)", ImpactBillions: 400, Sector: "Medicina",
		RelatedDiscovery: "Meccanica Quantistica", EverydayDevices: "Ospedali, centri diagnostici"},
	{Year: 1985, Name: "Microscopi a Effetto Tunnel", ImpactBillions: 50, Sector: "Ricerca",
		RelatedDiscovery: "Effetto Tunnel", EverydayDevices: "Laboratori di ricerca avanzata"},
	{Year: 2000, Name: "LED Quantici (QLED)", ImpactBillions: 300, Sector: "Display",
		RelatedDiscovery: "Meccanica Quantistica", EverydayDevices: "TV, monitor, smartphone"},
	{Year: 2010, Name: "Sensori Quantistici", ImpactBillions: 100, Sector: "Sensori",
		RelatedDiscovery: "Entanglement", EverydayDevices: "Orologi atomici, sensori di gravità"},
	{Year: 2015, Name: "Comunicazione Quantistica Sicura", ImpactBillions: 80, Sector: "Sicurezza",
		RelatedDiscovery: "Entanglement", EverydayDevices: "Reti di comunicazione sicura"},
	{Year: 2019, Name: "Computer Quantistico (Google)", ImpactBillions: 50, Sector: "Calcolo",
		RelatedDiscovery: "Quantum Computing (Feynman)", EverydayDevices: "Sistemi di calcolo specializzati"},
	{Year: 2022, Name: "Simulatori Quantistici", ImpactBillions: 30, Sector: "Ricerca",
		RelatedDiscovery: "Quantum Computing (Feynman)", EverydayDevices: "Laboratori di ricerca"},
}

var categoryUsages = []model.CategoryUsage{
	{Category: "Elettronica di consumo", TechnologiesUsed: "Transistor, Circuiti Integrati, QLED",
		ProductPercentage: 85, ExampleDevice: "Smartphone"},
	{Category: "Medicina", TechnologiesUsed: "MRI, Sensori Quantistici",
		ProductPercentage: 45, ExampleDevice: "Scanner MRI"},
	{Category: "Telecomunicazioni", TechnologiesUsed: "Laser, Comunicazione Quantistica",
		ProductPercentage: 60, ExampleDevice: "Fibra Ottica"},
	{Category: "Sicurezza", TechnologiesUsed: "Crittografia Quantistica",
		ProductPercentage: 25, ExampleDevice: "Sistemi di sicurezza bancari"},
	{Category: "Energia", TechnologiesUsed: "Celle Solari Quantistiche",
		ProductPercentage: 30, ExampleDevice: "Pannelli solari avanzati"},
}

// LagYears is left zero here; derive.ComputeLag fills it.
var correspondences = []model.Correspondence{
	{DiscoveryName: "Meccanica Quantistica (Schrödinger, Heisenberg)", DiscoveryYear: 1925,
		TechnologyName: "Transistor", TechnologyYear: 1947},
	{DiscoveryName: "Principio di Indeterminazione", DiscoveryYear: 1927,
		TechnologyName: "Microscopi a Effetto Tunnel", TechnologyYear: 1985},
	{DiscoveryName: "Paradosso EPR (Entanglement)", DiscoveryYear: 1935,
		TechnologyName: "Comunicazione Quantistica Sicura", TechnologyYear: 2015},
	{DiscoveryName: "Teoria BCS della Superconduttività", DiscoveryYear: 1957,
		TechnologyName: "Superconduttori commerciali", TechnologyYear: 1986, Unlisted: true},
	{DiscoveryName: "Quantum Computing (Feynman)", DiscoveryYear: 1981,
		TechnologyName: "Computer Quantistico (Google)", TechnologyYear: 2019},
}

var facts = map[string]string{
	"Transistor":                       "I processori dei moderni smartphone contengono miliardi di transistor, ciascuno delle dimensioni di pochi nanometri.",
	"Circuito Integrato":               "Il primo circuito integrato conteneva solo un transistor, un resistore e un condensatore. Oggi ne contengono miliardi.",
	"Laser":                            "Il termine LASER è in realtà un acronimo per 'Light Amplification by Stimulated Emission of Radiation'.",
	"MRI (Risonanza Magnetica)":        "Un tipico scanner MRI utilizza magneti 60.000 volte più potenti del campo magnetico terrestre.",
	"Microscopi a Effetto Tunnel":      "Questi microscopi possono visualizzare singoli atomi sfruttando l'effetto tunnel quantistico.",
	"LED Quantici (QLED)":              "I QLED utilizzano nanocristalli (quantum dots) di dimensioni comprese tra 2 e 10 nanometri.",
	"Sensori Quantistici":              "I sensori basati sul diamante possono rilevare campi magnetici generati da singole cellule.",
	"Comunicazione Quantistica Sicura": "Grazie all'entanglement, qualsiasi tentativo di intercettazione viene immediatamente rilevato.",
	"Computer Quantistico (Google)":    "Nel 2019, il computer quantistico di Google ha completato in 200 secondi un calcolo che avrebbe richiesto 10.000 anni al supercomputer più potente.",
	"Simulatori Quantistici":           "I simulatori quantistici permettono di studiare sistemi complessi impossibili da modellare con computer tradizionali.",
}

// EverydayExample is one of the "examples in everyday life" panels.
type EverydayExample struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

var everydayExamples = []EverydayExample{
	{Title: "Smartphone", Items: []string{
		"Transistor: Processori basati su effetti quantistici",
		"LED e QLED: Display a tecnologia quantistica",
		"GPS: Utilizza orologi atomici basati su principi quantistici",
	}},
	{Title: "Computer", Items: []string{
		"Memoria: Basata su storage di carica elettronica",
		"Laser: Lettori ottici basati su effetti quantistici",
		"Hard Disk: GMR (Giant Magnetoresistance) basata su spin quantistico",
	}},
	{Title: "Medicina", Items: []string{
		"MRI: Risonanza magnetica basata su spin nucleare",
		"PET: Tomografia a emissione di positroni",
		"Laser chirurgici: Basati su emissione stimolata quantistica",
	}},
}
