package i18n

import (
	"sync"
	"testing"
	"testing/fstest"
)

// testLocales monta um fs.FS em memória com locales de teste
func testLocales(t *testing.T) fstest.MapFS {
	t.Helper()

	return fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{
  "error.carrier_quota_exceeded": "Limit of {{.Limite}} plates reached",
  "error.duplicate_plate": "This plate is already registered",
  "error.plate_not_found": "Plate not found"
}`)},
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "error.carrier_quota_exceeded": "Limite de {{.Limite}} placas atingido",
  "error.duplicate_plate": "Esta placa já está cadastrada",
  "error.plate_not_found": "Placa não encontrada"
}`)},
		"es.json": &fstest.MapFile{Data: []byte(`{
  "error.duplicate_plate": "Esta placa ya está registrada"
}`)},
	}
}

func TestNewServiceFromFS(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewServiceFromFS(testLocales(t), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 3 {
			t.Errorf("esperava 3 idiomas suportados, obteve %d", len(supportedLangs))
		}
	})

	t.Run("erro quando não há arquivos de locale", func(t *testing.T) {
		_, err := NewServiceFromFS(fstest.MapFS{}, "pt-BR")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		_, err := NewServiceFromFS(testLocales(t), "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestNewService_LocalesEmbutidos(t *testing.T) {
	service, err := NewService("pt-BR")
	if err != nil {
		t.Fatalf("falha ao carregar locales embutidos: %v", err)
	}

	if !service.IsLanguageSupported("pt-BR") || !service.IsLanguageSupported("en") {
		t.Errorf("esperava pt-BR e en embutidos, obteve %v", service.GetSupportedLanguages())
	}

	result := service.T("pt-BR", "error.duplicate_plate")
	expected := "Esta placa já está cadastrada"
	if result != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, result)
	}
}

func TestService_T(t *testing.T) {
	service, err := NewServiceFromFS(testLocales(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "error.plate_not_found")
		expected := "Placa não encontrada"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "error.plate_not_found")
		expected := "Plate not found"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem com parâmetros", func(t *testing.T) {
		result := service.T("pt-BR", "error.carrier_quota_exceeded", map[string]interface{}{"Limite": 5})
		expected := "Limite de 5 placas atingido"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando chave não existe no idioma solicitado", func(t *testing.T) {
		result := service.T("es", "error.plate_not_found")
		expected := "Placa não encontrada" // Fallback para pt-BR
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna chave quando tradução não existe", func(t *testing.T) {
		result := service.T("pt-BR", "chave.inexistente")
		expected := "chave.inexistente"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	service, err := NewServiceFromFS(testLocales(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", true},
		{"fr", false},
		{"de", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	service, err := NewServiceFromFS(testLocales(t), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	// Executar traduções concorrentemente
	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "error.carrier_quota_exceeded", map[string]interface{}{"Limite": 3})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.duplicate_plate")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}

	// Se houver race condition, este teste falhará com -race flag
	wg.Wait()
}
