package config

// defaultStopwords is a compact core of the Tala Indonesian stopword
// list. Callers working on other corpora replace it via the YAML
// `stopwords` key.
func defaultStopwords() []string {
	return []string{
		"ada", "adalah", "adanya", "adapun", "agar", "akan", "akibat",
		"antara", "apabila", "atas", "atau", "bagi", "bahwa", "banyak",
		"belum", "berdasarkan", "berikut", "bisa", "bukan", "dalam",
		"dan", "dapat", "dari", "dengan", "di", "dia", "dimaksud",
		"diri", "ditetapkan", "guna", "hal", "hanya", "harus", "hingga",
		"ia", "ialah", "ini", "itu", "jika", "juga", "kami", "kapan",
		"karena", "ke", "kemudian", "kepada", "ketika", "kita", "lain",
		"lagi", "lebih", "maka", "masih", "melalui", "memiliki",
		"mengenai", "menjadi", "menurut", "merupakan", "mereka",
		"mungkin", "namun", "oleh", "pada", "para", "per", "pula",
		"saat", "saja", "sampai", "sebagai", "sebagaimana", "sebelum",
		"sebuah", "secara", "sedangkan", "sehingga", "sejak", "selain",
		"seluruh", "semua", "seperti", "serta", "sesuai", "setelah",
		"setiap", "suatu", "sudah", "telah", "tentang", "terhadap",
		"termasuk", "tersebut", "tidak", "untuk", "yaitu", "yakni",
		"yang",
	}
}
