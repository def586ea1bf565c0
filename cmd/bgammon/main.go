package main

import (
	"os"
	"time"

	"codeberg.org/tslocum/bgengine"
	"codeberg.org/tslocum/bgengine/pkg/console"
	"codeberg.org/tslocum/bgengine/pkg/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	c, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if c.Statistics {
		printRollStatistics(c.Seed)
		return
	}

	cons := console.New(os.Stdin, os.Stdout, c.Language)
	if c.White == "" {
		c.White, err = cons.PromptName(bgengine.White, "White")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read player name")
		}
	}
	if c.Black == "" {
		c.Black, err = cons.PromptName(bgengine.Black, "Black")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read player name")
		}
	}

	var dice *bgengine.Dice
	if c.Seed != 0 {
		dice = bgengine.NewSeededDice(c.Seed)
	} else {
		dice = bgengine.NewDice(nil)
	}

	game := bgengine.NewGame(
		bgengine.WithDice(dice),
		bgengine.WithPlayerNames(c.White, c.Black),
		bgengine.WithLogger(log.Logger.With().Str("component", "game").Logger()),
	)
	cons.SetPlayers(game.Players())

	log.Debug().Str("lang", cons.Language()).Uint64("seed", c.Seed).Msg("starting game")
	err = session.Run(game, cons, log.Logger.With().Str("component", "session").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
}

func printRollStatistics(seed uint64) {
	var oneSame, doubles int
	var last []int
	var rolls [6]int

	dice := bgengine.NewDice(nil)
	if seed != 0 {
		dice = bgengine.NewSeededDice(seed)
	}

	const total = 10000000
	for i := 0; i < total; i++ {
		roll := dice.Roll()
		roll1, roll2 := roll[0], roll[1]

		rolls[roll1-1]++
		rolls[roll2-1]++

		if len(last) > 0 && (roll1 == last[0] || roll1 == last[1] || roll2 == last[0] || roll2 == last[1]) {
			oneSame++
		}

		if len(roll) == 4 {
			doubles++
		}

		last = roll
	}

	p := message.NewPrinter(language.English)
	p.Printf("Rolled %d pairs of dice.\nDoubles: %d (%.0f%%). One same as last: %d (%.0f%%).\n", total, doubles, float64(doubles)/float64(total)*100, oneSame, float64(oneSame)/float64(total)*100)
	for i, n := range rolls {
		p.Printf("%ds: %d (%.0f%%)\n", i+1, n, float64(n)/float64(total*2)*100)
	}
}
