package main

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr"
	"github.com/spf13/viper"
	"nostrbadges/engine/actors"
	"nostrbadges/engine/library"
	"nostrbadges/messaging/relays"
	"nostrbadges/state/badges"
)

func main() {
	// Various aspects of this application require global and local settings.
	// To keep things clean and tidy we put these settings in a Viper
	// configuration.
	conf := viper.New()
	actors.InitConfig(conf)
	actors.SetConfig(conf)
	fmt.Println("CURRENT CONFIG")
	for k, v := range actors.MakeOrGetConfig().AllSettings() {
		fmt.Printf("\nKey: %s; Value: %v\n", k, v)
	}
	terminateChan := make(chan struct{})
	actors.SetTerminateChan(terminateChan)
	wallet := actors.MyWallet()
	library.LogCLI(fmt.Sprintf("Logged in as %s", wallet.Account), 4)

	// Watch for fresh awards naming us while the tool is open.
	awardChan := make(chan nostr.Event)
	go relays.Subscribe(nostr.Filters{nostr.Filter{
		Kinds: []int{badges.KindBadgeAward},
		Tags:  nostr.TagMap{"p": []string{wallet.Account}},
	}}, awardChan)
	go func() {
		for event := range awardChan {
			if badges.IsBadgeAward(event) {
				library.LogCLI(fmt.Sprintf("Badge award %s received from %s", event.ID, event.PubKey), 4)
			}
		}
	}()

	go cliListener(terminateChan)
	<-terminateChan
	actors.GetWaitGroup().Wait()
	fmt.Println("Bye!")
}
