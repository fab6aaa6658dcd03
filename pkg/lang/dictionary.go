package lang

import (
	"sort"
	"strings"
)

// pair keys the dictionary tables. A closed (source, target) pair over
// the supported set replaces the old "src_to_tgt" string keys.
type pair struct {
	Src Language
	Dst Language
}

// Dictionary is the static offline fallback: banking phrase tables plus
// word-by-word term dictionaries. Lookups distinguish "no entry" from
// an empty translation.
type Dictionary struct {
	words   map[pair]map[string]string
	phrases map[pair]map[string]string
}

// NewDictionary builds the banking dictionary. Reverse directions
// toward the canonical language are derived by inverting the forward
// tables, so non-English queries can be canonicalized offline.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		words:   map[pair]map[string]string{},
		phrases: map[pair]map[string]string{},
	}

	d.words[pair{English, Spanish}] = map[string]string{
		"password": "contraseña", "reset": "restablecer", "account": "cuenta",
		"balance": "saldo", "transfer": "transferir", "payment": "pago",
		"card": "tarjeta", "bank": "banco", "loan": "préstamo",
		"deposit": "depósito", "withdrawal": "retiro", "transaction": "transacción",
		"help": "ayuda", "support": "soporte", "customer service": "servicio al cliente",
		"complaint": "queja", "angry": "enojado", "frustrated": "frustrado",
		"terrible": "terrible", "awful": "horrible", "emergency": "emergencia",
		"urgent": "urgente", "manager": "gerente", "representative": "representante",
		"fraud": "fraude", "stolen": "robado", "error": "error",
		"problem": "problema", "issue": "problema", "money": "dinero",
		"cash": "efectivo", "credit": "crédito", "debit": "débito",
		"pin": "pin", "atm": "cajero automático", "branch": "sucursal",
		"online banking": "banca en línea", "mobile app": "aplicación móvil",
	}

	d.words[pair{English, French}] = map[string]string{
		"password": "mot de passe", "reset": "réinitialiser", "account": "compte",
		"balance": "solde", "transfer": "transférer", "payment": "paiement",
		"card": "carte", "bank": "banque", "loan": "prêt",
		"deposit": "dépôt", "withdrawal": "retrait", "transaction": "transaction",
		"help": "aide", "support": "support", "customer service": "service client",
		"complaint": "plainte", "angry": "en colère", "frustrated": "frustré",
		"terrible": "terrible", "awful": "affreux", "emergency": "urgence",
		"urgent": "urgent", "manager": "directeur", "representative": "représentant",
		"fraud": "fraude", "stolen": "volé", "error": "erreur",
		"problem": "problème", "issue": "problème", "money": "argent",
		"cash": "espèces", "credit": "crédit", "debit": "débit",
		"pin": "code pin", "atm": "distributeur automatique", "branch": "agence",
		"online banking": "banque en ligne", "mobile app": "application mobile",
	}

	d.words[pair{English, German}] = map[string]string{
		"password": "passwort", "reset": "zurücksetzen", "account": "konto",
		"balance": "saldo", "transfer": "übertragen", "payment": "zahlung",
		"card": "karte", "bank": "bank", "loan": "darlehen",
		"deposit": "einzahlung", "withdrawal": "abhebung", "transaction": "transaktion",
		"help": "hilfe", "support": "unterstützung", "customer service": "kundendienst",
		"complaint": "beschwerde", "angry": "wütend", "frustrated": "frustriert",
		"terrible": "schrecklich", "awful": "furchtbar", "emergency": "notfall",
		"urgent": "dringend", "manager": "manager", "representative": "vertreter",
		"fraud": "betrug", "stolen": "gestohlen", "error": "fehler",
		"problem": "problem", "issue": "problem", "money": "geld",
		"cash": "bargeld", "credit": "kredit", "debit": "lastschrift",
		"pin": "pin", "atm": "geldautomat", "branch": "filiale",
		"online banking": "online-banking", "mobile app": "mobile app",
	}

	d.words[pair{English, Chinese}] = map[string]string{
		"password": "密码", "reset": "重置", "account": "账户",
		"balance": "余额", "transfer": "转账", "payment": "付款",
		"card": "卡", "bank": "银行", "loan": "贷款",
		"deposit": "存款", "withdrawal": "取款", "transaction": "交易",
		"help": "帮助", "support": "支持", "customer service": "客户服务",
		"complaint": "投诉", "angry": "生气", "frustrated": "沮丧",
		"terrible": "糟糕", "awful": "可怕", "emergency": "紧急",
		"urgent": "紧急", "manager": "经理", "representative": "代表",
		"fraud": "欺诈", "stolen": "被盗", "error": "错误",
		"problem": "问题", "issue": "问题", "money": "钱",
		"cash": "现金", "credit": "信用", "debit": "借记",
		"pin": "密码", "atm": "自动取款机", "branch": "分行",
		"online banking": "网上银行", "mobile app": "手机应用",
	}

	d.phrases[pair{English, Spanish}] = map[string]string{
		"how do i reset my password": "cómo restablezco mi contraseña",
		"i need help":                "necesito ayuda",
		"transfer money":             "transferir dinero",
		"check balance":              "verificar saldo",
		"customer service":           "servicio al cliente",
		"i am angry":                 "estoy enojado",
		"this is terrible":           "esto es terrible",
		"i need a manager":           "necesito un gerente",
		"my card is stolen":          "mi tarjeta fue robada",
		"there is an error":          "hay un error",
	}

	d.phrases[pair{English, French}] = map[string]string{
		"how do i reset my password": "comment réinitialiser mon mot de passe",
		"i need help":                "j'ai besoin d'aide",
		"transfer money":             "transférer de l'argent",
		"check balance":              "vérifier le solde",
		"customer service":           "service client",
		"i am angry":                 "je suis en colère",
		"this is terrible":           "c'est terrible",
		"i need a manager":           "j'ai besoin d'un directeur",
		"my card is stolen":          "ma carte est volée",
		"there is an error":          "il y a une erreur",
	}

	d.phrases[pair{English, German}] = map[string]string{
		"how do i reset my password": "wie setze ich mein passwort zurück",
		"i need help":                "ich brauche hilfe",
		"transfer money":             "geld überweisen",
		"check balance":              "saldo prüfen",
		"customer service":           "kundendienst",
		"i am angry":                 "ich bin wütend",
		"this is terrible":           "das ist schrecklich",
		"i need a manager":           "ich brauche einen manager",
		"my card is stolen":          "meine karte wurde gestohlen",
		"there is an error":          "es gibt einen fehler",
	}

	d.phrases[pair{English, Chinese}] = map[string]string{
		"how do i reset my password": "如何重置我的密码",
		"i need help":                "我需要帮助",
		"transfer money":             "转账",
		"check balance":              "查询余额",
		"customer service":           "客户服务",
		"i am angry":                 "我很生气",
		"this is terrible":           "这太糟糕了",
		"i need a manager":           "我需要经理",
		"my card is stolen":          "我的卡被盗了",
		"there is an error":          "有错误",
	}

	d.buildReverse()
	return d
}

// buildReverse derives X→en tables by inverting the forward maps. When
// two English terms share a translation ("problem"/"issue"), the first
// in lexical order wins so the inversion stays deterministic.
func (d *Dictionary) buildReverse() {
	for p, forward := range d.words {
		reverse := map[string]string{}
		for _, en := range sortedKeys(forward) {
			translated := strings.ToLower(forward[en])
			if _, exists := reverse[translated]; !exists {
				reverse[translated] = en
			}
		}
		d.words[pair{p.Dst, p.Src}] = reverse
	}
	for p, forward := range d.phrases {
		reverse := map[string]string{}
		for _, en := range sortedKeys(forward) {
			translated := strings.ToLower(forward[en])
			if _, exists := reverse[translated]; !exists {
				reverse[translated] = en
			}
		}
		d.phrases[pair{p.Dst, p.Src}] = reverse
	}
}

// HasPair reports whether any offline table covers the direction.
func (d *Dictionary) HasPair(src, dst Language) bool {
	_, words := d.words[pair{src, dst}]
	_, phrases := d.phrases[pair{src, dst}]
	return words || phrases
}

// LookupPhrase resolves a whole phrase. found is false when the pair
// has no table or the table has no entry.
func (d *Dictionary) LookupPhrase(phrase string, src, dst Language) (string, bool) {
	table, ok := d.phrases[pair{src, dst}]
	if !ok {
		return "", false
	}
	translated, ok := table[strings.ToLower(strings.TrimSpace(phrase))]
	return translated, ok
}

// LookupWord resolves a single term. found is false when the pair has
// no table or the table has no entry.
func (d *Dictionary) LookupWord(word string, src, dst Language) (string, bool) {
	table, ok := d.words[pair{src, dst}]
	if !ok {
		return "", false
	}
	translated, ok := table[strings.ToLower(word)]
	return translated, ok
}

// LookupTerm resolves a keyword for the escalation scorer: phrase table
// first, then the word dictionary, then word-by-word for multi-word
// terms. found is false when nothing in the direction translates.
func (d *Dictionary) LookupTerm(term string, src, dst Language) (string, bool) {
	if translated, ok := d.LookupPhrase(term, src, dst); ok {
		return translated, true
	}
	if translated, ok := d.LookupWord(term, src, dst); ok {
		return translated, true
	}

	words := strings.Fields(term)
	if len(words) < 2 {
		return "", false
	}
	translatedAny := false
	out := make([]string, len(words))
	for i, word := range words {
		if translated, ok := d.LookupWord(word, src, dst); ok {
			out[i] = translated
			translatedAny = true
		} else {
			out[i] = word
		}
	}
	if !translatedAny {
		return "", false
	}
	return strings.Join(out, " "), true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
