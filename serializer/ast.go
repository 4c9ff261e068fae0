package serializer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/render-bridge/errors"
	"github.com/wippyai/render-bridge/expr"
)

var astRequired = wireFields(new(ASTWithSourceWire))

// astCodec carries only the source text and location of an expression.
// Decoding re-parses the text; the tree never crosses the bridge.
type astCodec struct{}

func (astCodec) serialize(_ *Serializer, value any, path []string) (any, error) {
	var a *expr.ASTWithSource
	switch v := value.(type) {
	case *expr.ASTWithSource:
		a = v
	case expr.ASTWithSource:
		a = &v
	default:
		return nil, errors.TypeMismatch(errors.PhaseSerialize, path, fmt.Sprintf("%T", value), KindASTWithSource.String())
	}
	return toPlain(&ASTWithSourceWire{Input: a.Source, Location: a.Location}), nil
}

func (astCodec) deserialize(s *Serializer, plain any, mode Mode, path []string) (any, error) {
	parse, err := s.parserFor(mode, path)
	if err != nil {
		return nil, err
	}

	var w ASTWithSourceWire
	if err := fromPlain(plain, &w, astRequired, KindASTWithSource, path); err != nil {
		return nil, err
	}

	ast, err := parse(w.Input, w.Location)
	if err != nil {
		return nil, errors.ParseFailed(path, string(mode), w.Input, err)
	}
	return ast, nil
}

type parseFunc func(input, location string) (*expr.ASTWithSource, error)

func (s *Serializer) parserFor(mode Mode, path []string) (parseFunc, error) {
	switch mode {
	case ModeInterpolation, ModeBinding, ModeSimpleBinding:
	case ModeTemplateBindings:
		s.log.Debug("template bindings parse mode is disabled",
			zap.String("path", errors.FormatPath(path)))
		return nil, errors.NoDeserializerForMode(path, string(mode))
	default:
		return nil, errors.NoDeserializerForMode(path, string(mode))
	}

	if s.parser == nil {
		return nil, errors.NotInitialized(errors.PhaseDeserialize, "expression parser")
	}

	switch mode {
	case ModeInterpolation:
		return s.parser.ParseInterpolation, nil
	case ModeBinding:
		return s.parser.ParseBinding, nil
	default:
		return s.parser.ParseSimpleBinding, nil
	}
}
