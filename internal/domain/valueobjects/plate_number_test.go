package valueobjects

import "testing"

func TestNewPlateNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "formato antigo válido",
			input: "ABC-1234",
			want:  "ABC-1234",
		},
		{
			name:  "formato Mercosul válido",
			input: "XYZ1D23",
			want:  "XYZ1D23",
		},
		{
			name:  "normaliza para maiúsculas",
			input: "abc-1234",
			want:  "ABC-1234",
		},
		{
			name:  "remove espaços nas bordas",
			input: "  ABC-1234  ",
			want:  "ABC-1234",
		},
		{
			name:    "formato antigo sem hífen é rejeitado",
			input:   "ABC1234",
			wantErr: true,
		},
		{
			name:    "letras demais",
			input:   "ABCD-1234",
			wantErr: true,
		},
		{
			name:    "dígitos de menos",
			input:   "ABC-123",
			wantErr: true,
		},
		{
			name:    "Mercosul com letra na posição errada",
			input:   "AB11D23",
			wantErr: true,
		},
		{
			name:    "string vazia",
			input:   "",
			wantErr: true,
		},
		{
			name:    "caracteres especiais",
			input:   "AB!-1234",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPlateNumber(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("esperava erro para %q, obteve %q", tt.input, got.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado para %q: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("esperava %q, obteve %q", tt.want, got.String())
			}
		})
	}
}

func TestIsValidPlateFormat(t *testing.T) {
	t.Run("aceita minúsculas sem normalizar o chamador", func(t *testing.T) {
		if !IsValidPlateFormat("abc1d23") {
			t.Error("esperava que 'abc1d23' fosse aceito")
		}
	})

	t.Run("rejeita formato desconhecido", func(t *testing.T) {
		if IsValidPlateFormat("1234-ABC") {
			t.Error("esperava que '1234-ABC' fosse rejeitado")
		}
	})
}
