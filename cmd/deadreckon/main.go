// Command deadreckon tracks a robot pose by integrating the velocity commands
// of a controller, logging poses locally and to a UDP collector.
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"

	"odo/command"
	"odo/config"
	"odo/format/compact"
	"odo/format/text"
	k "odo/kinematics"
	l "odo/log"
	"odo/odometry"

	log "github.com/s00500/env_logger"
)

// CLICOLOR_FORCE=1 go run ./cmd/deadreckon -config odo.example.yaml
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var configPath = flag.String("config", "", "settings file (yaml)")
var host = flag.String("host", "", "host of the controller and log collector")

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// enable line numbers in log
	log.EnableLineNumbers()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.LoadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *host != "" {
		settings.Host = *host
	}
	h, err := settings.ResolveHost()
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Starting at ", text.Position(settings.Origin.Kinematics().StartPosition()), ", period ", settings.Period)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sink := l.NewSink("Odometry", settings.LogAddr(h), settings.LogBuffer, settings.ReconnectMin, settings.ReconnectMax)
	go sink.Run(ctx)

	cmds := make(chan command.Command, 15)
	client := command.NewClient(settings.CommandAddr(h), settings.ReconnectMin, settings.ReconnectMax)
	go client.Run(ctx, cmds)

	tracker := odometry.NewTracker(settings.Origin.Kinematics())
	buf := make([]byte, 0, 64)
	publish := func(p k.Position) {
		buf = compact.AppendPosition(buf[:0], p)
		sink.Write(buf)
	}
	go tracker.Run(ctx, settings.Period, cmds, publish)

	go console(ctx, cancel, tracker, sink, cmds)

	<-ctx.Done()
	log.Info("Exiting")
}

// console reads operator input from the terminal. Anything that is not a
// console keyword is handled as a controller command line.
func console(ctx context.Context, cancel context.CancelFunc, tracker *odometry.Tracker, sink *l.Sink, cmds chan<- command.Command) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		buf := strings.TrimSpace(scanner.Text())
		switch buf {
		case "":
			continue
		case "pose":
			log.Infoln("Pose:", text.PositionStringer(tracker.Pose()), "velocity:", text.VelocityStringer(tracker.Velocity()))
		case "milestone":
			if m, ok := tracker.Milestone(); ok {
				dist, _ := tracker.DistanceToMilestone()
				log.Infof("Milestone: %s, %.1f mm left", text.Milestone(m), dist)
			} else {
				log.Infoln("No milestone")
			}
		case "dropped":
			log.Infoln("Dropped log lines:", sink.Dropped())
		case "routines":
			log.Infoln("Go routines:", runtime.NumGoroutine())
		case "exit":
			cancel()
			return
		default:
			cmd, err := command.Parse(buf)
			if log.Should(err) {
				continue
			}
			log.Infof("Got '%s' from terminal", buf)
			select {
			case cmds <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}
