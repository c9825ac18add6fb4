// package churchcmd implements the church command line tool.
package churchcmd

import (
	"context"

	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "Church encodings of booleans and naturals",
}, map[star.Symbol]star.Command{
	"select": selectCmd,
	"encode": encodeCmd,
	"succ":   succCmd,
	"verify": verifyCmd,
})

// logContext returns ctx with a production logger.
func logContext(ctx context.Context) context.Context {
	l, err := zap.NewProduction()
	if err != nil {
		return ctx
	}
	return logctx.NewContext(ctx, l)
}
