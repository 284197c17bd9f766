package logx

import "testing"

func TestLoggerEnabled(t *testing.T) {
	tests := []struct {
		name string
		log  Logger
		want bool
	}{
		{name: "nop", log: Nop(), want: false},
		{name: "warn", log: NewConsole("warn"), want: false},
		{name: "debug", log: NewConsole("debug"), want: true},
		{name: "with keeps level", log: NewConsole("debug").With(String("comp", "x")), want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.Enabled(LevelDebug); got != tt.want {
				t.Fatalf("Enabled(debug) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevelFallback(t *testing.T) {
	t.Parallel()
	if got := parseLevel("nonsense", LevelDebug); got != LevelDebug {
		t.Fatalf("parseLevel fallback = %v", got)
	}
}
