package analysis

// Stage describes how far an analysis run has progressed. Stages advance at
// real step boundaries inside the pipeline, except StageBlindspots which is
// cosmetic: blind-spot detection happens inside the single model call and
// has no completion signal of its own.
type Stage int

const (
	StageReading Stage = iota
	StageComparing
	StageBlindspots
	StageGenerating
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageReading:
		return "Lendo currículo..."
	case StageComparing:
		return "Comparando com a vaga..."
	case StageBlindspots:
		return "Identificando pontos cegos..."
	case StageGenerating:
		return "Gerando análise com IA..."
	case StageDone:
		return "Pronto!"
	default:
		return "..."
	}
}
