package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// category - строка для посева категорий
type category struct {
	id    int
	ctype string
}

// question - строка для посева вопросов
type question struct {
	id         int
	question   string
	answer     string
	category   int
	difficulty int
}

var categories = []category{
	{1, "Science"},
	{2, "Art"},
	{3, "Geography"},
	{4, "History"},
	{5, "Entertainment"},
	{6, "Sports"},
}

// Классический стартовый набор фронтенда: 19 вопросов в 6 категориях
var questions = []question{
	{2, "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 5, 4},
	{4, "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 5, 4},
	{5, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2},
	{6, "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 5, 3},
	{9, "What boxer's original name is Cassius Clay?", "Muhammad Ali", 4, 1},
	{10, "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 6, 3},
	{11, "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 6, 4},
	{12, "Who invented Peanut Butter?", "George Washington Carver", 4, 2},
	{13, "What is the largest lake in Africa?", "Lake Victoria", 3, 2},
	{14, "In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3, 3},
	{15, "The Taj Mahal is located in which Indian city?", "Agra", 3, 2},
	{16, "Which Dutch graphic artist-initials M C was a creator of optical illusions?", "Escher", 2, 1},
	{17, "La Giaconda is better known as what?", "Mona Lisa", 2, 3},
	{18, "How many paintings did Van Gogh sell in his lifetime?", "One", 2, 4},
	{19, "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", 2, 2},
	{20, "What is the heaviest organ in the human body?", "The Liver", 1, 4},
	{21, "Who discovered penicillin?", "Alexander Fleming", 1, 3},
	{22, "Hematology is a branch of medicine involving the study of what?", "Blood", 1, 4},
	{23, "Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4, 4},
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DATABASE_HOST", "localhost"),
		envOr("DATABASE_PORT", "5432"),
		envOr("DATABASE_USER", "postgres"),
		envOr("DATABASE_PASSWORD", "postgres"),
		envOr("DATABASE_DBNAME", "trivia"),
		envOr("DATABASE_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	// Перед посевом доводим схему до актуальной
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}

	for _, c := range categories {
		if _, err := db.Exec(
			`INSERT INTO categories (id, type) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			c.id, c.ctype,
		); err != nil {
			log.Fatalf("Не удалось вставить категорию %q: %v", c.ctype, err)
		}
	}

	for _, q := range questions {
		if _, err := db.Exec(
			`INSERT INTO questions (id, question, answer, category, difficulty)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			q.id, q.question, q.answer, q.category, q.difficulty,
		); err != nil {
			log.Fatalf("Не удалось вставить вопрос #%d: %v", q.id, err)
		}
	}

	// Сдвигаем последовательности за явно заданные ID
	if _, err := db.Exec(`SELECT setval('categories_id_seq', (SELECT MAX(id) FROM categories))`); err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(`SELECT setval('questions_id_seq', (SELECT MAX(id) FROM questions))`); err != nil {
		log.Fatal(err)
	}

	log.Printf("Посев завершен: %d категорий, %d вопросов", len(categories), len(questions))
}
