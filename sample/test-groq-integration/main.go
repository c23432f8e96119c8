package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	if os.Getenv("GROQ_API_KEY") == "" {
		log.Fatal("❌ GROQ_API_KEY deve estar configurado no .env")
	}

	client := groq.NewClient(os.Getenv("GROQ_API_KEY"))

	input := groq.SummarizeInput{
		Transcript: "Hi, this is John from Acme Pizza. Yes, we've been thinking about " +
			"a delivery system. Can you send me a proposal by Friday? My budget is " +
			"around two thousand a month.",
		ContactName: "John",
		Business:    "Acme Pizza",
		Industry:    "Food",
		DealStage:   entity.StageContacted,
	}

	fmt.Println("🔄 Enviando transcrição para análise no Groq...")
	fmt.Printf("📋 Dados:\n")
	fmt.Printf("   Contato: %s (%s)\n", input.ContactName, input.Business)
	fmt.Printf("   Setor: %s\n", input.Industry)
	fmt.Printf("   Estágio atual: %s\n\n", input.DealStage)

	summary, err := client.Summarize(context.Background(), input)
	if err != nil {
		log.Fatalf("Erro ao analisar transcrição no Groq: %v", err)
	}

	fmt.Printf("Análise concluída com sucesso! \n")
	fmt.Printf(" Resumo: %s\n", summary.Summary)
	fmt.Printf(" Estágio recomendado: %s\n", summary.RecommendedDealStage)
	fmt.Printf(" Próxima ação: %s\n", summary.NextAction)
}
